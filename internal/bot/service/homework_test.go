package service

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestCheckResponse(t *testing.T) {
	tests := []struct {
		name     string
		response any
		wantErr  error
		wantLen  int
	}{
		{
			name:     "valid response",
			response: map[string]any{"homeworks": []any{map[string]any{"homework_name": "hw1"}}, "current_date": float64(1000)},
			wantLen:  1,
		},
		{
			name:     "valid empty homeworks",
			response: map[string]any{"homeworks": []any{}, "current_date": float64(1000)},
			wantLen:  0,
		},
		{
			name:     "not an object",
			response: []any{"homeworks"},
			wantErr:  ErrNotMap,
		},
		{
			name:     "string response",
			response: "homeworks",
			wantErr:  ErrNotMap,
		},
		{
			name:     "nil response",
			response: nil,
			wantErr:  ErrNotMap,
		},
		{
			name:     "missing homeworks",
			response: map[string]any{"current_date": float64(1000)},
			wantErr:  ErrMissingKeys,
		},
		{
			name:     "missing current_date",
			response: map[string]any{"homeworks": []any{}},
			wantErr:  ErrMissingKeys,
		},
		{
			name:     "homeworks not a list",
			response: map[string]any{"homeworks": "hw1", "current_date": float64(1000)},
			wantErr:  ErrHomeworksNotList,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			homeworks, err := CheckResponse(tt.response)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(homeworks) != tt.wantLen {
				t.Errorf("expected %d homeworks, got %d", tt.wantLen, len(homeworks))
			}
			original := tt.response.(map[string]any)["homeworks"].([]any)
			if !reflect.DeepEqual(homeworks, original) {
				t.Errorf("expected homeworks returned unchanged, got %v", homeworks)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name     string
		homework any
		want     string
		wantErr  error
	}{
		{
			name:     "approved",
			homework: map[string]any{"homework_name": "hw1", "status": "approved"},
			want:     `Изменился статус проверки работы "hw1". Работа проверена: ревьюеру всё понравилось. Ура!`,
		},
		{
			name:     "reviewing",
			homework: map[string]any{"homework_name": "hw2", "status": "reviewing"},
			want:     `Изменился статус проверки работы "hw2". Работа взята на проверку ревьюером.`,
		},
		{
			name:     "rejected",
			homework: map[string]any{"homework_name": "hw3", "status": "rejected"},
			want:     `Изменился статус проверки работы "hw3". Работа проверена: у ревьюера есть замечания.`,
		},
		{
			name:     "unknown status",
			homework: map[string]any{"homework_name": "hw4", "status": "archived"},
			wantErr:  ErrUnknownStatus,
		},
		{
			name:     "missing name",
			homework: map[string]any{"status": "approved"},
			wantErr:  ErrInvalidResponse,
		},
		{
			name:     "missing status",
			homework: map[string]any{"homework_name": "hw5"},
			wantErr:  ErrInvalidResponse,
		},
		{
			name:     "not an object",
			homework: "hw6",
			wantErr:  ErrInvalidResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.homework)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected message %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParseStatusUnknownStatusNamed(t *testing.T) {
	_, err := ParseStatus(map[string]any{"homework_name": "hw1", "status": "archived"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "archived") {
		t.Errorf("expected error to name the status, got %v", err)
	}
}

type fakeAPI struct {
	response any
	err      error
	calls    []int64
}

func (f *fakeAPI) HomeworkStatuses(fromDate int64) (any, error) {
	f.calls = append(f.calls, fromDate)
	return f.response, f.err
}

type fakeNotifier struct {
	messages []string
}

func (f *fakeNotifier) SendMessage(text string) {
	f.messages = append(f.messages, text)
}

func TestProcessOnceStatusChange(t *testing.T) {
	api := &fakeAPI{response: map[string]any{
		"homeworks":    []any{map[string]any{"homework_name": "hw1", "status": "approved"}},
		"current_date": float64(1000),
	}}
	notifier := &fakeNotifier{}
	bot := NewHomeworkBot(api, notifier, 500)

	bot.ProcessOnce()

	want := `Изменился статус проверки работы "hw1". Работа проверена: ревьюеру всё понравилось. Ура!`
	if len(notifier.messages) != 1 || notifier.messages[0] != want {
		t.Fatalf("expected single message %q, got %v", want, notifier.messages)
	}

	bot.ProcessOnce()
	if api.calls[1] != 1000 {
		t.Errorf("expected cursor advanced to 1000, got %d", api.calls[1])
	}
}

func TestProcessOnceNoHomeworks(t *testing.T) {
	api := &fakeAPI{response: map[string]any{
		"homeworks":    []any{},
		"current_date": float64(2000),
	}}
	notifier := &fakeNotifier{}
	bot := NewHomeworkBot(api, notifier, 500)

	bot.ProcessOnce()
	if len(notifier.messages) != 0 {
		t.Fatalf("expected no messages, got %v", notifier.messages)
	}

	bot.ProcessOnce()
	if api.calls[1] != 2000 {
		t.Errorf("expected cursor advanced to 2000, got %d", api.calls[1])
	}
}

func TestProcessOnceAPIError(t *testing.T) {
	api := &fakeAPI{err: errors.New("endpoint unavailable")}
	notifier := &fakeNotifier{}
	bot := NewHomeworkBot(api, notifier, 500)

	bot.ProcessOnce()

	if len(notifier.messages) != 1 {
		t.Fatalf("expected single failure notice, got %v", notifier.messages)
	}
	if !strings.HasPrefix(notifier.messages[0], "Сбой в работе программы:") {
		t.Errorf("expected failure notice, got %q", notifier.messages[0])
	}

	bot.ProcessOnce()
	if api.calls[1] != 500 {
		t.Errorf("expected cursor unchanged at 500, got %d", api.calls[1])
	}
}

func TestProcessOnceUnknownStatus(t *testing.T) {
	api := &fakeAPI{response: map[string]any{
		"homeworks":    []any{map[string]any{"homework_name": "hw2", "status": "archived"}},
		"current_date": float64(3000),
	}}
	notifier := &fakeNotifier{}
	bot := NewHomeworkBot(api, notifier, 500)

	bot.ProcessOnce()

	if len(notifier.messages) != 1 {
		t.Fatalf("expected single failure notice, got %v", notifier.messages)
	}
	if !strings.Contains(notifier.messages[0], "archived") {
		t.Errorf("expected failure notice citing unknown status, got %q", notifier.messages[0])
	}

	// The cursor advances on validation, independently of the formatting failure.
	bot.ProcessOnce()
	if api.calls[1] != 3000 {
		t.Errorf("expected cursor advanced to 3000, got %d", api.calls[1])
	}
}

func TestProcessOnceInvalidResponseShape(t *testing.T) {
	api := &fakeAPI{response: map[string]any{"homeworks": []any{}}}
	notifier := &fakeNotifier{}
	bot := NewHomeworkBot(api, notifier, 500)

	bot.ProcessOnce()

	if len(notifier.messages) != 1 {
		t.Fatalf("expected single failure notice, got %v", notifier.messages)
	}

	bot.ProcessOnce()
	if api.calls[1] != 500 {
		t.Errorf("expected cursor unchanged at 500, got %d", api.calls[1])
	}
}

func TestProcessOnceMissingCurrentDateType(t *testing.T) {
	api := &fakeAPI{response: map[string]any{
		"homeworks":    []any{},
		"current_date": "not-a-number",
	}}
	notifier := &fakeNotifier{}
	bot := NewHomeworkBot(api, notifier, 500)

	bot.ProcessOnce()
	bot.ProcessOnce()

	// A mis-typed current_date keeps the previous cursor.
	if api.calls[1] != 500 {
		t.Errorf("expected cursor unchanged at 500, got %d", api.calls[1])
	}
}
