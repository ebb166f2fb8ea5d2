package api

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerCustomValidators 注册自定义验证器
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// 注册手机号验证器
		v.RegisterValidation("validPhone", validPhone)
		// 注册车辆类型验证器
		v.RegisterValidation("validVehicleType", validVehicleType)
	}
}

var phonePattern = regexp.MustCompile(`^1[3-9]\d{9}$`)

// validPhone 验证手机号格式
var validPhone validator.Func = func(fl validator.FieldLevel) bool {
	phone, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return phonePattern.MatchString(phone)
}

// validVehicleType 验证车辆类型
var validVehicleType validator.Func = func(fl validator.FieldLevel) bool {
	vehicleType, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	switch vehicleType {
	case "bicycle", "motorcycle", "car":
		return true
	}
	return false
}
