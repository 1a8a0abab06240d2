package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"tradelab.com/pkg/xerr"
)

var v = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// decimal.Decimal 只按符号参与比较，只支持 gt=0 / gte=0 / lt=0 这类和 0 比较的 tag
	// 转成 float64 会把 1e-400 这样的极小正数变成 0
	v.RegisterCustomTypeFunc(func(f reflect.Value) interface{} {
		d, ok := f.Interface().(decimal.Decimal)
		if !ok {
			return nil
		}
		return d.Sign()
	}, decimal.Decimal{})
	// maxbytes=N 按字节计长度，max=N 对字符串按 rune 计
	if err := v.RegisterValidation("maxbytes", maxBytes); err != nil {
		panic(err)
	}
	return v
}

func maxBytes(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= n
}

// Register 注册自定义 tag，只在 init 阶段调用
func Register(tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validate: register %s: %v", tag, err))
	}
}

// Rules 一个结构体的校验规则
// Priority 决定多个字段同时失败时报告哪一个，Messages 是字段对应的错误文案
type Rules struct {
	Priority []string
	Messages map[string]string
}

// Check 校验 s，返回第一个失败的字段名和 InvalidArgument 错误
func Check(s any, r Rules) (string, error) {
	err := v.Struct(s)
	if err == nil {
		return "", nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return "", xerr.Wrap(err, xerr.InvalidArgument, "invalid argument")
	}

	failed := make(map[string]validator.FieldError, len(fieldErrs))
	for _, fe := range fieldErrs {
		failed[fe.StructField()] = fe
	}
	for _, field := range r.Priority {
		if fe, ok := failed[field]; ok {
			return field, xerr.New(xerr.InvalidArgument, message(fe, r))
		}
	}
	fe := fieldErrs[0]
	return fe.StructField(), xerr.New(xerr.InvalidArgument, message(fe, r))
}

func message(fe validator.FieldError, r Rules) string {
	if msg, ok := r.Messages[fe.StructField()]; ok {
		return msg
	}
	return fmt.Sprintf("%s failed on %s", fe.StructField(), fe.Tag())
}
