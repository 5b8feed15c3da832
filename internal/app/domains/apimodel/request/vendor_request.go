package request

// CreateVendorRequest 创建供应商请求
type CreateVendorRequest struct {
	Name           string `json:"name" binding:"required" example:"ACME Supplies"`
	ContactDetails string `json:"contact_details" example:"+1-415-555-0100"`
	Address        string `json:"address" example:"123 Main St, San Francisco"`
	VendorCode     string `json:"vendor_code" example:"VND-001"` // 为空时自动生成
}

// UpdateVendorRequest 更新供应商基础信息请求，缺省字段不修改
type UpdateVendorRequest struct {
	Name           *string `json:"name"`
	ContactDetails *string `json:"contact_details"`
	Address        *string `json:"address"`
	VendorCode     *string `json:"vendor_code"`
}
