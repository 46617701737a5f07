package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/workwhisperer/timekeeper-backend-go/internal/domain/shift"
	"github.com/workwhisperer/timekeeper-backend-go/internal/kvstore"
)

// KeyShiftCard is the blob key for the daily punch card.
const KeyShiftCard = "shift_card"

type punchCardJSON struct {
	State         string  `json:"state"`
	WorkStartTime *string `json:"workStartTime,omitempty"`
	CheckInTime   *string `json:"checkInTime,omitempty"`
	CheckOutTime  *string `json:"checkOutTime,omitempty"`
}

type cardRepository struct {
	store kvstore.Store
}

func NewCardRepository(store kvstore.Store) shift.CardRepository {
	return &cardRepository{store: store}
}

// LoadCard implements shift.CardRepository.
func (r *cardRepository) LoadCard(ctx context.Context) (shift.PunchCard, error) {
	blob, err := r.store.Load(ctx, KeyShiftCard)
	if err != nil {
		return shift.PunchCard{}, err
	}

	var card punchCardJSON
	if err := json.Unmarshal(blob, &card); err != nil {
		return shift.PunchCard{}, fmt.Errorf("malformed %s blob: %w", KeyShiftCard, err)
	}

	return shift.PunchCard{
		State:         shift.State(card.State),
		WorkStartTime: card.WorkStartTime,
		CheckInTime:   card.CheckInTime,
		CheckOutTime:  card.CheckOutTime,
	}, nil
}

// SaveCard implements shift.CardRepository.
func (r *cardRepository) SaveCard(ctx context.Context, card shift.PunchCard) error {
	blob, err := json.Marshal(punchCardJSON{
		State:         string(card.State),
		WorkStartTime: card.WorkStartTime,
		CheckInTime:   card.CheckInTime,
		CheckOutTime:  card.CheckOutTime,
	})
	if err != nil {
		return fmt.Errorf("failed to encode %s blob: %w", KeyShiftCard, err)
	}
	return r.store.Save(ctx, KeyShiftCard, blob)
}
