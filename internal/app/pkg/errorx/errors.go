package errorx

import "errors"

// 定义业务错误
var (
	// ErrValidation 校验错误类别，实体层的具体校验错误包裹它
	ErrValidation = errors.New("validation error")

	ErrVendorNotFound      = errors.New("vendor not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrDuplicateVendorCode = errors.New("duplicate vendor code")
	ErrDuplicatePONumber   = errors.New("duplicate po number")
	ErrImmutableIssueDate  = errors.New("issue date cannot be modified")
	ErrConcurrencyConflict = errors.New("concurrent metrics update conflict")
)

// IsNotFound 是否为资源不存在错误（404，调用方不重试）
func IsNotFound(err error) bool {
	return errors.Is(err, ErrVendorNotFound) || errors.Is(err, ErrOrderNotFound)
}

// IsValidation 是否为参数/业务规则校验错误（400，不产生部分写入）
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrDuplicateVendorCode) ||
		errors.Is(err, ErrDuplicatePONumber) ||
		errors.Is(err, ErrImmutableIssueDate)
}

// IsConflict 是否为并发冲突错误（409，重算触发器重试一次后上抛）
func IsConflict(err error) bool {
	return errors.Is(err, ErrConcurrencyConflict)
}

// BusinessError 业务错误结构
type BusinessError struct {
	Code    int
	Message string
}

// Error 实现 error 接口
func (e *BusinessError) Error() string {
	return e.Message
}

// NewBusinessError 创建业务错误
func NewBusinessError(code int, message string) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
	}
}
