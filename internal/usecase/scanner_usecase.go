// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"fitbuilder/internal/domain/entity"
)

// AnalyzeFoodInput carries an encoded food photo.
type AnalyzeFoodInput struct {
	ImageBase64 string `json:"imageBase64" validate:"required,base64"`
	MimeType    string `json:"mimeType" validate:"required"`
}

// ScannerUsecase estimates the nutrition content of a food photo through the
// analysis capability. Results are returned to the caller and not persisted.
type ScannerUsecase interface {
	AnalyzeFood(ctx context.Context, input *AnalyzeFoodInput) (*entity.FoodAnalysis, error)
}
