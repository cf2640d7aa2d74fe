package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	playground "github.com/go-playground/validator/v10"
)

// RegisterBindings gắn rule `bookdate` vào engine binding của gin.
// Field chuỗi mang tag này phải đúng định dạng YYYY-MM-DD.
func RegisterBindings() {
	engine, ok := binding.Validator.Engine().(*playground.Validate)
	if !ok {
		return
	}

	_ = engine.RegisterValidation("bookdate", func(fl playground.FieldLevel) bool {
		_, err := time.Parse(DateLayout, fl.Field().String())
		return err == nil
	})
}
