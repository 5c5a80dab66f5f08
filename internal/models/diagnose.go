package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
	UrgencyUrgent = "urgent"
)

const (
	DiagnoseStatusPending    = "pending"
	DiagnoseStatusInProgress = "in-progress"
	DiagnoseStatusCompleted  = "completed"
)

type DiagnoseRequest struct {
	ID                  uuid.UUID      `json:"id"`
	CustomerName        string         `json:"customer_name"`
	Email               string         `json:"email"`
	Phone               string         `json:"phone"`
	Address             string         `json:"address"`
	CarMake             string         `json:"car_make"`
	CarModel            string         `json:"car_model"`
	CarYear             int            `json:"car_year"`
	VIN                 string         `json:"vin,omitempty"`
	ProblemDescription  string         `json:"problem_description"`
	ServiceType         string         `json:"service_type"`
	UrgencyLevel        string         `json:"urgency_level"`
	Images              pq.StringArray `json:"images"`
	Status              string         `json:"status"`
	AdminResponse       string         `json:"admin_response,omitempty"`
	RecommendedProducts pq.StringArray `json:"recommended_products,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

type CreateDiagnoseRequest struct {
	CustomerName       string   `json:"customer_name" validate:"required,min=2,max=100"`
	Email              string   `json:"email" validate:"required,email"`
	Phone              string   `json:"phone" validate:"required,min=7,max=20"`
	Address            string   `json:"address,omitempty" validate:"omitempty,max=300"`
	CarMake            string   `json:"car_make" validate:"required,max=50"`
	CarModel           string   `json:"car_model" validate:"required,max=50"`
	CarYear            int      `json:"car_year" validate:"required,gte=1950,lte=2100"`
	VIN                string   `json:"vin,omitempty" validate:"omitempty,len=17"`
	ProblemDescription string   `json:"problem_description" validate:"required,min=10"`
	ServiceType        string   `json:"service_type" validate:"required,max=100"`
	UrgencyLevel       string   `json:"urgency_level" validate:"required,oneof=low medium high urgent"`
	Images             []string `json:"images,omitempty" validate:"omitempty,max=10,dive,url"`
}

type UpdateDiagnoseRequest struct {
	Status              *string  `json:"status,omitempty" validate:"omitempty,oneof=pending in-progress completed"`
	AdminResponse       *string  `json:"admin_response,omitempty"`
	RecommendedProducts []string `json:"recommended_products,omitempty"`
}
