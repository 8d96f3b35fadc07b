package model

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report violations under the json field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// BookViolations validates a book as on create and returns every violated
// constraint keyed by field name, or nil when the book is valid.
func BookViolations(b *Book) map[string]string {
	return violations(validate.Struct(b), bookMessage)
}

// BorrowViolations validates a borrow record at creation time. The due date
// must be strictly after now.
func BorrowViolations(b *Borrow, now time.Time) map[string]string {
	out := violations(validate.Struct(b), borrowMessage)
	if !b.DueDate.After(now) {
		if out == nil {
			out = make(map[string]string)
		}
		out["dueDate"] = "Due date must be in the future"
	}
	return out
}

func violations(err error, message func(validator.FieldError) string) map[string]string {
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}
	out := make(map[string]string, len(errs))
	for _, fe := range errs {
		out[fe.Field()] = message(fe)
	}
	return out
}

func bookMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "title":
		return "Title is required"
	case "author":
		return "Author is required"
	case "genre":
		if fe.Tag() == "oneof" {
			return "Genre must be one of: FICTION, NON_FICTION, SCIENCE, HISTORY, BIOGRAPHY, FANTASY"
		}
		return "Genre is required"
	case "isbn":
		return "ISBN is required"
	case "copies":
		return "Copies must be a positive number"
	}
	return fe.Error()
}

func borrowMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "book":
		return "Book reference is required"
	case "quantity":
		if fe.Tag() == "gte" {
			return "Quantity must be at least 1"
		}
		return "Quantity is required"
	case "dueDate":
		return "Due date is required"
	}
	return fe.Error()
}
