package service

import (
	"regexp"
	"strings"
)

// 宽松的邮箱格式校验，仅检查 local@domain.tld 形状
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ShipmentForm 货运单创建表单
// ContainerID 为可选的客户端建议值，最终以服务端确认的编号为准
type ShipmentForm struct {
	ContainerID         string `json:"containerId"`
	CustomerName        string `json:"customerName"`
	CustomerEmail       string `json:"customerEmail"`
	CustomerPhone       string `json:"customerPhone"`
	DepartureLocation   string `json:"departureLocation"`
	DestinationLocation string `json:"destinationLocation"`
	CurrentLocation     string `json:"currentLocation"`
	DepartureDate       string `json:"departureDate"`
	ETA                 string `json:"eta"`
	Weight              string `json:"weight"`
	Dimensions          string `json:"dimensions"`
	Status              string `json:"status"`
	ShipmentType        string `json:"shipmentType"`
	Description         string `json:"description"`
	SpecialInstructions string `json:"specialInstructions"`
}

// Normalize 去除各字段首尾空白
func (f *ShipmentForm) Normalize() {
	f.ContainerID = strings.ToUpper(strings.TrimSpace(f.ContainerID))
	f.CustomerName = strings.TrimSpace(f.CustomerName)
	f.CustomerEmail = strings.TrimSpace(f.CustomerEmail)
	f.CustomerPhone = strings.TrimSpace(f.CustomerPhone)
	f.DepartureLocation = strings.TrimSpace(f.DepartureLocation)
	f.DestinationLocation = strings.TrimSpace(f.DestinationLocation)
	f.CurrentLocation = strings.TrimSpace(f.CurrentLocation)
	f.DepartureDate = strings.TrimSpace(f.DepartureDate)
	f.ETA = strings.TrimSpace(f.ETA)
	f.Weight = strings.TrimSpace(f.Weight)
	f.Dimensions = strings.TrimSpace(f.Dimensions)
	f.Status = strings.TrimSpace(f.Status)
	f.ShipmentType = strings.TrimSpace(f.ShipmentType)
	f.Description = strings.TrimSpace(f.Description)
	f.SpecialInstructions = strings.TrimSpace(f.SpecialInstructions)
}

// ValidateShipmentForm 校验货运单表单
// 返回字段名到错误消息的映射；空映射表示校验通过
func ValidateShipmentForm(form *ShipmentForm) map[string]string {
	form.Normalize()
	errs := make(map[string]string)

	if form.CustomerName == "" {
		errs["customerName"] = "Customer name is required"
	}
	if form.CustomerEmail == "" {
		errs["customerEmail"] = "Customer email is required"
	} else if !emailPattern.MatchString(form.CustomerEmail) {
		errs["customerEmail"] = "Invalid email format"
	}
	if form.CustomerPhone == "" {
		errs["customerPhone"] = "Customer phone is required"
	}
	if form.DepartureLocation == "" {
		errs["departureLocation"] = "Departure location is required"
	}
	if form.DestinationLocation == "" {
		errs["destinationLocation"] = "Destination location is required"
	}
	if form.CurrentLocation == "" {
		errs["currentLocation"] = "Current location is required"
	}
	if form.DepartureDate == "" {
		errs["departureDate"] = "Departure date is required"
	}
	if form.ETA == "" {
		errs["eta"] = "ETA is required"
	}
	if form.Weight == "" {
		errs["weight"] = "Weight is required"
	}
	if form.Dimensions == "" {
		errs["dimensions"] = "Dimensions are required"
	}
	return errs
}

// EnquiryForm 客户咨询表单
type EnquiryForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Normalize 去除各字段首尾空白
func (f *EnquiryForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Subject = strings.TrimSpace(f.Subject)
	f.Message = strings.TrimSpace(f.Message)
}

// ValidateEnquiryForm 校验客户咨询表单
func ValidateEnquiryForm(form *EnquiryForm) map[string]string {
	form.Normalize()
	errs := make(map[string]string)

	if form.Name == "" {
		errs["name"] = "Name is required"
	}
	if form.Email == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(form.Email) {
		errs["email"] = "Invalid email format"
	}
	if form.Subject == "" {
		errs["subject"] = "Subject is required"
	}
	if form.Message == "" {
		errs["message"] = "Message is required"
	}
	return errs
}
