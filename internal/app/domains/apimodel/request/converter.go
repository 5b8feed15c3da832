package request

import (
	"github.com/Leomv55/vms/internal/app/domains/entity/etorder"
	"github.com/Leomv55/vms/internal/app/domains/repo/rpvendor"
	"github.com/Leomv55/vms/internal/app/pkg/errorx"
)

// ToIdentityUpdate 转换为供应商基础信息更新字段
func (r *UpdateVendorRequest) ToIdentityUpdate() rpvendor.IdentityUpdate {
	return rpvendor.IdentityUpdate{
		Name:           r.Name,
		ContactDetails: r.ContactDetails,
		Address:        r.Address,
		VendorCode:     r.VendorCode,
	}
}

// ToOrderUpdate 转换为订单部分更新字段
// issue_date 不可变，请求携带该字段时整体拒绝
func (r *UpdateOrderRequest) ToOrderUpdate() (etorder.Update, error) {
	if r.IssueDate != nil {
		return etorder.Update{}, errorx.ErrImmutableIssueDate
	}

	update := etorder.Update{
		OrderDate:          r.OrderDate,
		DeliveryDate:       r.DeliveryDate,
		Items:              r.Items,
		Quantity:           r.Quantity,
		QualityRating:      r.QualityRating,
		AcknowledgmentDate: r.AcknowledgmentDate,
	}
	if r.Status != nil {
		status := etorder.Status(*r.Status)
		update.Status = &status
	}
	return update, nil
}
