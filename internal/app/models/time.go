package models

import "time"

type TimeModel struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *TimeModel) SetCreatedAtUpdatedAt(now time.Time) {
	m.CreatedAt = now
	m.UpdatedAt = now
}

func (m *TimeModel) SetUpdatedAt(now time.Time) {
	m.UpdatedAt = now
}
