package note

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workwhisperer/timekeeper-backend-go/internal/domain/note"
	"github.com/workwhisperer/timekeeper-backend-go/internal/kvstore/memory"
	"github.com/workwhisperer/timekeeper-backend-go/internal/pkg/clock"
	"github.com/workwhisperer/timekeeper-backend-go/internal/pkg/validator"
	"github.com/workwhisperer/timekeeper-backend-go/internal/repository/kv"
)

var noteTestNow = time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

func newTestNoteService() note.NoteService {
	store := memory.NewStore()
	return NewNoteService(kv.NewNoteRepository(store), clock.Fixed(noteTestNow))
}

func addTestNote(t *testing.T, svc note.NoteService, title string, reminder time.Time) note.NoteResponse {
	resp, err := svc.Add(context.Background(), note.SaveNoteRequest{
		Title:        title,
		Content:      "nội dung " + title,
		ReminderTime: reminder.Format(time.RFC3339),
	})
	require.NoError(t, err)
	return resp
}

func TestNoteService_Add(t *testing.T) {
	ctx := context.Background()
	noteSvc := newTestNoteService()

	reminder := noteTestNow.Add(2 * time.Hour)
	resp, err := noteSvc.Add(ctx, note.SaveNoteRequest{
		Title:        "Họp nhóm",
		Content:      "Chuẩn bị báo cáo tuần",
		ReminderTime: reminder.Format(time.RFC3339),
		WeekDays:     []int{1, 3, 5},
		Important:    true,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Họp nhóm", resp.Title)
	assert.True(t, resp.ReminderTime.Equal(reminder))
	assert.Equal(t, []int{1, 3, 5}, resp.WeekDays)
	assert.True(t, resp.Important)
	assert.True(t, resp.CreatedAt.Equal(noteTestNow))
}

func TestNoteService_Add_Validation(t *testing.T) {
	ctx := context.Background()
	noteSvc := newTestNoteService()
	future := noteTestNow.Add(time.Hour).Format(time.RFC3339)

	tests := []struct {
		name string
		req  note.SaveNoteRequest
	}{
		{
			name: "empty title",
			req:  note.SaveNoteRequest{Content: "x", ReminderTime: future},
		},
		{
			name: "title too long",
			req:  note.SaveNoteRequest{Title: strings.Repeat("a", 101), Content: "x", ReminderTime: future},
		},
		{
			name: "content too long",
			req:  note.SaveNoteRequest{Title: "x", Content: strings.Repeat("b", 301), ReminderTime: future},
		},
		{
			name: "reminder in the past",
			req: note.SaveNoteRequest{
				Title:        "x",
				Content:      "y",
				ReminderTime: noteTestNow.Add(-time.Hour).Format(time.RFC3339),
			},
		},
		{
			name: "unparseable reminder",
			req:  note.SaveNoteRequest{Title: "x", Content: "y", ReminderTime: "tomorrow noon"},
		},
		{
			name: "weekday out of range",
			req: note.SaveNoteRequest{
				Title: "x", Content: "y", ReminderTime: future,
				WeekDays: []int{0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := noteSvc.Add(ctx, tt.req)

			var validationErrs validator.ValidationErrors
			assert.ErrorAs(t, err, &validationErrs)
		})
	}
}

func TestNoteService_List_CapsViewAtThree(t *testing.T) {
	ctx := context.Background()
	noteSvc := newTestNoteService()

	// Insert out of reminder order
	addTestNote(t, noteSvc, "fourth", noteTestNow.Add(4*time.Hour))
	addTestNote(t, noteSvc, "first", noteTestNow.Add(1*time.Hour))
	addTestNote(t, noteSvc, "third", noteTestNow.Add(3*time.Hour))
	addTestNote(t, noteSvc, "second", noteTestNow.Add(2*time.Hour))

	capped, err := noteSvc.List(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 4, capped.Total)
	require.Len(t, capped.Notes, 3)
	assert.Equal(t, "first", capped.Notes[0].Title)
	assert.Equal(t, "second", capped.Notes[1].Title)
	assert.Equal(t, "third", capped.Notes[2].Title)

	all, err := noteSvc.List(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 4, all.Total)
	require.Len(t, all.Notes, 4)
	assert.Equal(t, "fourth", all.Notes[3].Title)
}

func TestNoteService_Edit(t *testing.T) {
	ctx := context.Background()
	noteSvc := newTestNoteService()

	created := addTestNote(t, noteSvc, "Họp nhóm", noteTestNow.Add(time.Hour))

	newReminder := noteTestNow.Add(6 * time.Hour)
	updated, err := noteSvc.Edit(ctx, created.ID, note.SaveNoteRequest{
		Title:        "Họp nhóm (dời lịch)",
		Content:      "Phòng 201",
		ReminderTime: newReminder.Format(time.RFC3339),
		Important:    true,
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Họp nhóm (dời lịch)", updated.Title)
	assert.True(t, updated.ReminderTime.Equal(newReminder))
	assert.True(t, updated.Important)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
}

func TestNoteService_Edit_UnknownID(t *testing.T) {
	ctx := context.Background()
	noteSvc := newTestNoteService()

	_, err := noteSvc.Edit(ctx, "no-such-note", note.SaveNoteRequest{
		Title:        "x",
		Content:      "y",
		ReminderTime: noteTestNow.Add(time.Hour).Format(time.RFC3339),
	})
	assert.ErrorIs(t, err, note.ErrNoteNotFound)
}

func TestNoteService_Delete(t *testing.T) {
	ctx := context.Background()
	noteSvc := newTestNoteService()

	created := addTestNote(t, noteSvc, "Họp nhóm", noteTestNow.Add(time.Hour))

	require.NoError(t, noteSvc.Delete(ctx, created.ID))

	listed, err := noteSvc.List(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 0, listed.Total)

	// Deleting again is a no-op
	assert.NoError(t, noteSvc.Delete(ctx, created.ID))
}
