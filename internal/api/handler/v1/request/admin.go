package request

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/SparkHacks/spark-dashboard-sub000/internal/domain"
)

func statusValues() []interface{} {
	values := make([]interface{}, 0, len(domain.Statuses))
	for _, s := range domain.Statuses {
		values = append(values, s)
	}

	return values
}

type UpdateStatusRequest struct {
	Email  string `json:"email"`
	Status string `json:"status"`
}

func (req *UpdateStatusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.EmailFormat),
		validation.Field(&req.Status, validation.Required, validation.In(statusValues()...)),
	)
}

type RoleRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (req *RoleRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.EmailFormat),
		validation.Field(&req.Role, validation.Required, validation.In(
			domain.RoleAdmin,
			domain.RoleQRScanner,
			domain.RoleWebDev,
			domain.RoleDirector,
			domain.RoleException,
		)),
	)
}
