package dto

import (
	"time"

	"github.com/sq23rd/roster-backend/internal/models"
)

type CreateFCIFRequest struct {
	Title   string `json:"title" binding:"required" validate:"required"`
	Content string `json:"content" binding:"required" validate:"required"`
}

type AddQualificationRequest struct {
	Type    string `json:"type" binding:"required" validate:"required"`
	SubType string `json:"subType"`
}

type FCIFView struct {
	ID               string                `json:"id"`
	Title            string                `json:"title"`
	Content          string                `json:"content"`
	CreatedAt        time.Time             `json:"createdAt"`
	Acknowledgements []AcknowledgementView `json:"acknowledgements"`
}

type AcknowledgementView struct {
	UserID         string    `json:"userId"`
	AcknowledgedAt time.Time `json:"acknowledgedAt"`
}

func NewFCIFView(f *models.FCIF) *FCIFView {
	acks := make([]AcknowledgementView, 0, len(f.Acknowledgements))
	for _, a := range f.Acknowledgements {
		acks = append(acks, AcknowledgementView{
			UserID:         a.UserID,
			AcknowledgedAt: a.AcknowledgedAt,
		})
	}
	return &FCIFView{
		ID:               f.ID,
		Title:            f.Title,
		Content:          f.Content,
		CreatedAt:        f.CreatedAt,
		Acknowledgements: acks,
	}
}

func NewFCIFViews(fcifs []models.FCIF) []*FCIFView {
	views := make([]*FCIFView, 0, len(fcifs))
	for i := range fcifs {
		views = append(views, NewFCIFView(&fcifs[i]))
	}
	return views
}

type QualificationView struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Type       string    `json:"type"`
	SubType    string    `json:"subType"`
	AssignedOn time.Time `json:"assignedOn"`
	AssignedBy string    `json:"assignedBy"`
}

func NewQualificationView(q *models.Qualification) *QualificationView {
	return &QualificationView{
		ID:         q.ID,
		UserID:     q.UserID,
		Type:       q.Type,
		SubType:    q.SubType,
		AssignedOn: q.AssignedOn,
		AssignedBy: q.AssignedBy,
	}
}

func NewQualificationViews(quals []models.Qualification) []*QualificationView {
	views := make([]*QualificationView, 0, len(quals))
	for i := range quals {
		views = append(views, NewQualificationView(&quals[i]))
	}
	return views
}
