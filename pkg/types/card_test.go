package types

import (
	"errors"
	"testing"
)

func TestCardValidate(t *testing.T) {
	tests := []struct {
		name    string
		card    Card
		wantErr error
	}{
		{
			name:    "empty title returns ErrTitleEmpty",
			card:    Card{Title: "", Content: "run backup.sh"},
			wantErr: ErrTitleEmpty,
		},
		{
			name:    "whitespace title returns ErrTitleEmpty",
			card:    Card{Title: "   ", Content: "run backup.sh"},
			wantErr: ErrTitleEmpty,
		},
		{
			name:    "empty content returns ErrContentEmpty",
			card:    Card{Title: "Backup", Content: ""},
			wantErr: ErrContentEmpty,
		},
		{
			name:    "whitespace content returns ErrContentEmpty",
			card:    Card{Title: "Backup", Content: "\t\n"},
			wantErr: ErrContentEmpty,
		},
		{
			name:    "valid card",
			card:    Card{Title: "Backup", Content: "run backup.sh"},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.card.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
