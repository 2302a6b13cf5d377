package commands

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jd/internal/domain"
)

func t0() context.Context {
	return context.Background()
}

func TestShowCommand(t *testing.T) {
	f := newFixture(t,
		"10-19 Finance/11 Taxes/11.01 Receipts",
		"10-19 Finance/11 Taxes/11.02 Returns",
		"20-29 Home/21 Garden",
	)
	f.index(t)

	res, err := NewShowCommand(f.store, f.root, "").Execute(t0())
	require.NoError(t, err)
	assert.Len(t, res.Lines, 7)

	res, err = NewShowCommand(f.store, f.root, "11.02").Execute(t0())
	require.NoError(t, err)
	require.Len(t, res.Lines, 3)
	assert.Equal(t, "Returns", res.Lines[2].Entry.Label)

	_, err = NewShowCommand(f.store, f.root, "99.01").Execute(t0())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestShowCommand_CorruptIndex(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.WriteFile(f.store.Path(f.root), []byte("version: [\n"), 0644))

	_, err := NewShowCommand(f.store, f.root, "").Execute(t0())
	assert.ErrorIs(t, err, domain.ErrCorruptIndex)
}

func TestListCommand(t *testing.T) {
	f := newFixture(t,
		"10-19 Finance/11 Taxes/11.01 Receipts",
		"10-19 Finance/12 Bills/12.03 Power",
	)
	f.index(t)

	ids, err := NewListCommand(f.store, f.root).Execute(t0())
	require.NoError(t, err)

	var got []string
	for _, e := range ids {
		got = append(got, e.Number.String())
	}
	assert.Equal(t, []string{"11.01", "12.03"}, got)
}

func TestResolveCommand(t *testing.T) {
	f := newFixture(t, "10-19 Finance/11 Taxes/11.01 Receipts", "10-19 Finance/12 Bills")
	f.index(t)

	tests := []struct {
		query string
		kind  domain.ResultKind
	}{
		{"11.01", domain.ResultExact},
		{"11", domain.ResultChildren},
		{"12", domain.ResultEmpty},
		{"10-19", domain.ResultChildren},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			res, err := NewResolveCommand(f.store, f.root, tt.query).Execute(t0())
			require.NoError(t, err)
			assert.Equal(t, tt.kind, res.Resolution.Kind)
			assert.True(t, f.exists(res.Resolution.Target.Path))
		})
	}

	_, err := NewResolveCommand(f.store, f.root, "99.01").Execute(t0())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestValidateCommand(t *testing.T) {
	f := newFixture(t, "10-19 Finance/11 Taxes/11.01 Receipts")
	f.index(t)

	res, err := NewValidateCommand(f.store, f.root).Execute(t0())
	require.NoError(t, err)
	assert.True(t, res.OK())

	hand := `version: 1
entries:
  - {level: area, number: 10-19, label: Finance, path: 10-19 Finance}
  - {level: category, number: "11", label: Taxes, path: 10-19 Finance/11 Taxes}
  - {level: id, number: "11.01", label: Receipts, path: 10-19 Finance/11 Taxes/11.01 Receipts}
  - {level: id, number: "11.01", label: Copy, path: 10-19 Finance/11 Taxes/11.01 Copy}
`
	require.NoError(t, os.WriteFile(f.store.Path(f.root), []byte(hand), 0644))

	res, err = NewValidateCommand(f.store, f.root).Execute(t0())
	require.NoError(t, err)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, domain.DuplicateNumber, res.Diagnostics[0].Kind)
}

func TestNextCommand(t *testing.T) {
	f := newFixture(t,
		"10-19 Finance/11 Taxes/11.01 Receipts",
		"10-19 Finance/11 Taxes/11.03 Returns",
	)
	f.index(t)

	n, err := NewNextCommand(f.store, f.root, "11").Execute(t0())
	require.NoError(t, err)
	assert.Equal(t, "11.02", n.String())

	n, err = NewNextCommand(f.store, f.root, "10-19").Execute(t0())
	require.NoError(t, err)
	assert.Equal(t, "12", n.String())

	_, err = NewNextCommand(f.store, f.root, "11.01").Execute(t0())
	assert.Error(t, err)

	// Nothing was created
	assert.False(t, f.exists("10-19 Finance/11 Taxes/11.02"))
}
