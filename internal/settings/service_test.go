package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ExpTable_Go/internal/domain"
	"github.com/osse101/ExpTable_Go/internal/event"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Get(ctx context.Context, profile, key string) (string, error) {
	args := m.Called(ctx, profile, key)
	return args.String(0), args.Error(1)
}

func (m *MockRepository) GetAll(ctx context.Context, profile string) (map[string]string, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockRepository) Set(ctx context.Context, profile, key, value string) error {
	args := m.Called(ctx, profile, key, value)
	return args.Error(0)
}

func (m *MockRepository) Backend() string { return "mock" }

func TestLoadTableSettings_Defaults(t *testing.T) {
	svc := NewService(NewMemoryRepository(), nil)

	got := svc.LoadTableSettings(context.Background(), "p1")

	assert.Equal(t, domain.DefaultTableSettings(), got)
	assert.Equal(t, domain.CeilingAll, got.Difficulty)
	assert.True(t, got.IncludeExtraStage)
	assert.True(t, got.OnlyTop20)
	assert.False(t, got.SeparateEventStage)
}

func TestLoadTableSettings_Decoding(t *testing.T) {
	tests := []struct {
		name   string
		stored map[string]string
		want   domain.TableSettings
	}{
		{
			name: "all stored",
			stored: map[string]string{
				KeyDifficulty: "H8", KeyIncludeExtraStage: "0", KeyOnlyTop20: "0", KeySeparateEventStage: "1",
			},
			want: domain.TableSettings{Difficulty: "H8", SeparateEventStage: true},
		},
		{
			name:   "non-zero strings are true",
			stored: map[string]string{KeySeparateEventStage: "true", KeyOnlyTop20: "yes"},
			want:   domain.TableSettings{Difficulty: "All", IncludeExtraStage: true, OnlyTop20: true, SeparateEventStage: true},
		},
		{
			name:   "empty values use defaults",
			stored: map[string]string{KeyIncludeExtraStage: "", KeyDifficulty: ""},
			want:   domain.DefaultTableSettings(),
		},
		{
			name:   "invalid ceiling falls back",
			stored: map[string]string{KeyDifficulty: "Z9"},
			want:   domain.DefaultTableSettings(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			repo.On("GetAll", mock.Anything, "p1").Return(tt.stored, nil)

			got := NewService(repo, nil).LoadTableSettings(context.Background(), "p1")

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadTableSettings_StorageFailure(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetAll", mock.Anything, "p1").Return(nil, errors.New("connection refused"))

	got := NewService(repo, nil).LoadTableSettings(context.Background(), "p1")

	assert.Equal(t, domain.DefaultTableSettings(), got)
	repo.AssertExpectations(t)
}

func TestSaveTableSettings_RoundTrip(t *testing.T) {
	bus := event.NewMemoryBus()
	var saved []event.SettingsSavedPayloadV1
	bus.Subscribe(event.SettingsSaved, func(ctx context.Context, evt event.Event) error {
		p, err := event.DecodePayload[event.SettingsSavedPayloadV1](evt.Payload)
		saved = append(saved, p)
		return err
	})

	repo := NewMemoryRepository()
	svc := NewService(repo, bus)
	ctx := context.Background()
	want := domain.TableSettings{Difficulty: "T3", IncludeExtraStage: false, OnlyTop20: true, SeparateEventStage: true}

	require.NoError(t, svc.SaveTableSettings(ctx, "p1", want))

	assert.Equal(t, want, svc.LoadTableSettings(ctx, "p1"))
	assert.Equal(t, domain.DefaultTableSettings(), svc.LoadTableSettings(ctx, "p2"))

	raw, err := repo.Get(ctx, "p1", KeyIncludeExtraStage)
	require.NoError(t, err)
	assert.Equal(t, ValueFalse, raw)

	require.Len(t, saved, 1)
	assert.Equal(t, BackendMemory, saved[0].Backend)
}

func TestSaveTableSettings_Validation(t *testing.T) {
	svc := NewService(NewMemoryRepository(), nil)
	ctx := context.Background()

	err := svc.SaveTableSettings(ctx, "", domain.DefaultTableSettings())
	assert.ErrorIs(t, err, domain.ErrInvalidProfile)

	err = svc.SaveTableSettings(ctx, "p1", domain.TableSettings{Difficulty: "C1"})
	assert.ErrorIs(t, err, domain.ErrInvalidCeiling)
}

func TestSaveTableSettings_WriteFailure(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Set", mock.Anything, "p1", KeyDifficulty, "All").Return(errors.New("disk full"))

	err := NewService(repo, nil).SaveTableSettings(context.Background(), "p1", domain.DefaultTableSettings())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDatabaseError)
	assert.Contains(t, err.Error(), "disk full")
}

func TestLoadInts(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	require.NoError(t, repo.Set(ctx, "p1", CashableKey(300), "12"))
	require.NoError(t, repo.Set(ctx, "p1", CashableKey(500), "abc"))

	got := NewService(repo, nil).LoadInts(ctx, "p1", []string{CashableKey(300), CashableKey(500), CashableKey(1000)})

	assert.Equal(t, map[string]int{"num_cashable_300": 12, "num_cashable_500": 0, "num_cashable_1000": 0}, got)
}

func TestSaveInt(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, nil)
	ctx := context.Background()

	require.NoError(t, svc.SaveInt(ctx, "p1", CashableKey(2000), 7))
	v, err := repo.Get(ctx, "p1", "num_cashable_2000")
	require.NoError(t, err)
	assert.Equal(t, "7", v)

	assert.ErrorIs(t, svc.SaveInt(ctx, "", CashableKey(2000), 7), domain.ErrInvalidProfile)
}

func TestDecodeBool(t *testing.T) {
	assert.True(t, DecodeBool("", false, true))
	assert.False(t, DecodeBool("", true, false))
	assert.False(t, DecodeBool("0", true, true))
	assert.True(t, DecodeBool("1", true, false))
	assert.True(t, DecodeBool("false", true, false))
}

func TestMemoryRepository_NotFound(t *testing.T) {
	_, err := NewMemoryRepository().Get(context.Background(), "p1", KeyOnlyTop20)
	assert.ErrorIs(t, err, domain.ErrSettingNotFound)
}
