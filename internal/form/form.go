package form

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate 校验器单例，注册 numerictext 自定义规则
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// numerictext：可解析为浮点数的文本
	v.RegisterValidation("numerictext", func(fl validator.FieldLevel) bool {
		_, err := strconv.ParseFloat(strings.TrimSpace(fl.Field().String()), 64)
		return err == nil
	})
	return v
}

// Errors 字段级错误集合，键为表单字段名，空集合表示校验通过
type Errors map[string]string

// Valid 是否通过校验
func (e Errors) Valid() bool {
	return len(e) == 0
}

// AddForm 添加电影表单
type AddForm struct {
	Title string `form:"title" validate:"required"`
}

// Validate 校验表单，返回字段错误
func (f *AddForm) Validate() Errors {
	errs := Errors{}
	if err := validate.Struct(f); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			if fe.StructField() == "Title" {
				errs["title"] = "请输入电影名称"
			}
		}
	}
	return errs
}

// UpdateForm 修改评分/评论表单，评论是自由文本，可以为空
type UpdateForm struct {
	NewRating string `form:"new_rating" validate:"required,numerictext"`
	NewReview string `form:"new_review"`
}

// Validate 校验表单，返回字段错误
func (f *UpdateForm) Validate() Errors {
	errs := Errors{}
	if err := validate.Struct(f); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			if fe.StructField() == "NewRating" {
				if fe.Tag() == "required" {
					errs["new_rating"] = "请输入评分"
				} else {
					errs["new_rating"] = "评分必须是数字，如 7.5"
				}
			}
		}
	}
	return errs
}

// Rating 解析评分数值，只应在校验通过后调用
func (f *UpdateForm) Rating() float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(f.NewRating), 64)
	return v
}
