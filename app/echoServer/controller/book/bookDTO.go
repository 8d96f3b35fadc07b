package book

type CreateBookReq struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Genre       string `json:"genre"`
	ISBN        string `json:"isbn"`
	Description string `json:"description"`
	Copies      *int   `json:"copies"`
}

type UpdateBookReq struct {
	Title       *string `json:"title"`
	Author      *string `json:"author"`
	Genre       *string `json:"genre"`
	ISBN        *string `json:"isbn"`
	Description *string `json:"description"`
	Copies      *int    `json:"copies"`
}

type ListBooksQuery struct {
	Filter string `query:"filter"`
	Sort   string `query:"sort"`
	SortBy string `query:"sortBy"`
	Limit  string `query:"limit"`
}
