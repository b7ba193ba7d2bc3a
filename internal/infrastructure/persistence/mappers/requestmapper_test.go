package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reqtrack/reqtrack/internal/domain/request"
	vo "github.com/reqtrack/reqtrack/internal/domain/request/valueobjects"
)

func TestRequestMapper_HistorySurvivesRoundTrip(t *testing.T) {
	now := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)
	r, err := request.NewRequest(request.NewRequestParams{
		Title:       "Export CSV",
		Content:     "Need CSV export",
		CustomerIDs: []uint{3, 1, 3},
		TagIDs:      []uint{5},
		CreatedBy:   1,
	}, now)
	require.NoError(t, err)
	r.SetID(9)
	require.NoError(t, r.AssignSequence(1))

	status := vo.StatusPlanned
	parent := uint(2)
	_, err = r.ApplyUpdate(request.Update{
		Status:       &status,
		ParentSet:    true,
		ParentID:     &parent,
		CustomFields: &map[string]any{"plan": "pro"},
	}, 2, now)
	require.NoError(t, err)
	_, err = r.AddComment("ok", 2, nil, now)
	require.NoError(t, err)

	m := NewRequestMapper()
	model, err := m.ToModel(r)
	require.NoError(t, err)
	assert.Equal(t, "REQ-00001", model.RequestNumber)
	require.Len(t, model.History, 3)
	assert.JSONEq(t, `"new"`, string(model.History[0].OldValue))

	back, err := m.ToDomain(model, []uint{3, 1}, []uint{5})
	require.NoError(t, err)

	require.Len(t, back.History(), 3)
	sc, ok := back.History()[0].Change().(request.StatusChange)
	require.True(t, ok)
	assert.Equal(t, vo.StatusPlanned, sc.New)
	rc, ok := back.History()[1].Change().(request.RefChange)
	require.True(t, ok)
	assert.Nil(t, rc.Old)
	assert.Equal(t, uint(2), *rc.New)
	assert.Equal(t, "pro", back.CustomFields()["plan"])
	require.Len(t, back.Comments(), 1)
	assert.Equal(t, now, back.Comments()[0].CreatedAt())
}

func TestRequestMapper_LinksDeduplicate(t *testing.T) {
	r, err := request.NewRequest(request.NewRequestParams{
		Title: "t", Content: "c", CustomerIDs: []uint{3, 1, 3, 0}, CreatedBy: 1,
	}, time.Now())
	require.NoError(t, err)
	r.SetID(4)

	links := NewRequestMapper().CustomerLinks(r)
	require.Len(t, links, 2)
	assert.Equal(t, uint(3), links[0].CustomerID)
	assert.Equal(t, 0, links[0].Position)
	assert.Equal(t, uint(1), links[1].CustomerID)
	assert.Equal(t, uint(4), links[1].RequestID)
}
