package model

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bridgehost/internal/cli/styles"
	"github.com/bnema/bridgehost/internal/domain/entity"
)

type fakeGrants struct {
	records []*entity.GrantRecord
	listErr error
	purged  []string
}

func (f *fakeGrants) List(_ context.Context, _ string, _ int) ([]*entity.GrantRecord, error) {
	return f.records, f.listErr
}

func (f *fakeGrants) Purge(_ context.Context, origin string) (int64, error) {
	f.purged = append(f.purged, origin)
	return 1, nil
}

func sampleGrants() []*entity.GrantRecord {
	now := time.Now()
	return []*entity.GrantRecord{
		{ID: 2, Origin: "https://meet.example.com", Decision: entity.GrantAllowed, CreatedAt: now},
		{ID: 1, Origin: "https://scan.example.com", Decision: entity.GrantRefused, CreatedAt: now.Add(-time.Hour)},
	}
}

func TestGrantsModel_LoadsAndRenders(t *testing.T) {
	src := &fakeGrants{records: sampleGrants()}
	m := NewGrantsModel(context.Background(), styles.NewTheme(), src, "", 50)

	msg := m.Init()()
	next, _ := m.Update(msg)
	gm := next.(GrantsModel)

	require.NoError(t, gm.Err())
	assert.Len(t, gm.Records(), 2)
	assert.Equal(t, int64(2), gm.Selected().ID)
	assert.Contains(t, gm.View(), "meet.example.com")
}

func TestGrantsModel_PurgeSelectedOrigin(t *testing.T) {
	src := &fakeGrants{records: sampleGrants()}
	m := NewGrantsModel(context.Background(), styles.NewTheme(), src, "", 50)
	next, _ := m.Update(m.Init()())

	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	require.NotNil(t, cmd)

	next, reload := next.Update(cmd())
	require.NotNil(t, reload)
	assert.Equal(t, []string{"https://meet.example.com"}, src.purged)
	assert.Contains(t, next.View(), "purged 1 entries")
}

func TestGrantsModel_ShowsLoadError(t *testing.T) {
	src := &fakeGrants{listErr: errors.New("database is locked")}
	m := NewGrantsModel(context.Background(), styles.NewTheme(), src, "", 50)

	next, _ := m.Update(m.Init()())

	assert.Error(t, next.(GrantsModel).Err())
	assert.Contains(t, next.View(), "database is locked")
}

func TestGrantsModel_QuitKeys(t *testing.T) {
	m := NewGrantsModel(context.Background(), styles.NewTheme(), &fakeGrants{}, "", 50)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
