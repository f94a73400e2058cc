package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/deppfellow/chinook/internal/errs"
	"github.com/deppfellow/chinook/internal/model"
	"github.com/deppfellow/chinook/internal/prompt"
	"github.com/deppfellow/chinook/internal/repository"
	"github.com/deppfellow/chinook/internal/schema"
	"github.com/deppfellow/chinook/internal/testdb"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc   *ProgrammerService
	store *repository.ProgrammerRepository
	out   *bytes.Buffer
	logs  *bytes.Buffer
}

// newFixture builds a service over an empty database that reads input as
// the user's answers.
func newFixture(t *testing.T, input string) fixture {
	t.Helper()
	orm := testdb.New(t)

	f := fixture{
		store: repository.NewProgrammerRepository(orm.DB),
		out:   &bytes.Buffer{},
		logs:  &bytes.Buffer{},
	}
	log := zerolog.New(f.logs)
	f.svc = NewProgrammerService(f.store, &log, f.out, prompt.New(strings.NewReader(input), f.out))
	return f
}

func (f fixture) seed(t *testing.T) []model.Programmer {
	t.Helper()
	created, err := f.svc.Seed(context.Background())
	require.NoError(t, err)
	return created
}

func TestSeed(t *testing.T) {
	f := newFixture(t, "")
	created := f.seed(t)

	require.Len(t, created, 7)
	people, err := f.svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, created, people)
}

func TestSetFamousFor(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "")
	f.seed(t)

	updated, err := f.svc.SetFamousFor(ctx, 7, "World President")
	require.NoError(t, err)
	assert.Equal(t, "Maurizio Loffredo", updated.FullName())

	stored, err := f.store.ByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "World President", stored.FamousFor)

	_, err = f.svc.SetFamousFor(ctx, 99, "Nothing")
	assert.True(t, errs.IsNotFound(err))
}

func TestNormalizeGenders(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "")
	f.seed(t)
	odd, err := f.store.Create(ctx, model.Programmer{FirstName: "Linus", LastName: "Torvalds", Gender: "X"})
	require.NoError(t, err)

	report, err := f.svc.NormalizeGenders(ctx)
	require.NoError(t, err)
	assert.Equal(t, NormalizeReport{Updated: 7, Undefined: 1}, report)
	assert.Contains(t, f.logs.String(), "gender not defined")

	people, err := f.store.Find(ctx, nil)
	require.NoError(t, err)
	for _, p := range people {
		if p.ID == odd.ID {
			assert.Equal(t, "X", p.Gender)
			continue
		}
		assert.Contains(t, []string{model.GenderFemale, model.GenderMale}, p.Gender, p.FullName())
	}

	ada, err := f.store.First(ctx, schema.Filter{"first_name": "Ada"})
	require.NoError(t, err)
	assert.Equal(t, model.GenderFemale, ada.Gender)

	f.logs.Reset()
	again, err := f.svc.NormalizeGenders(ctx)
	require.NoError(t, err)
	assert.Equal(t, NormalizeReport{Undefined: 8}, again)
	assert.Equal(t, 8, strings.Count(f.logs.String(), "gender not defined"))
	assert.Contains(t, f.logs.String(), `"gender":"Female"`)

	ada, err = f.store.ByID(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, model.GenderFemale, ada.Gender)
}

func TestDeleteByName(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		input   string
		deleted bool
		act     func(t *testing.T, f fixture)
	}{
		{
			name:    "confirmed",
			input:   "Bill\nGates\ny\n",
			deleted: true,
			act: func(t *testing.T, f fixture) {
				assert.Equal(t,
					PromptFirst+PromptLast+"Found: Bill Gates\n"+PromptConfirm+MsgDeleted+"\n",
					f.out.String())

				_, err := f.store.First(ctx, schema.Filter{"first_name": "Bill", "last_name": "Gates"})
				assert.True(t, errs.IsNotFound(err))

				people, err := f.store.Find(ctx, nil)
				require.NoError(t, err)
				assert.Len(t, people, 6)
			},
		},
		{
			name:  "declined",
			input: "Bill\nGates\nn\n",
			act: func(t *testing.T, f fixture) {
				assert.True(t, strings.HasSuffix(f.out.String(), MsgNotDeleted+"\n"))

				people, err := f.store.Find(ctx, nil)
				require.NoError(t, err)
				assert.Len(t, people, 7)
			},
		},
		{
			name:  "no such programmer",
			input: "Bill\nJoy\n",
			act: func(t *testing.T, f fixture) {
				assert.Equal(t, PromptFirst+PromptLast+MsgNoRecords+"\n", f.out.String())
				assert.NotContains(t, f.out.String(), PromptConfirm)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.input)
			f.seed(t)

			deleted, err := f.svc.DeleteByName(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.deleted, deleted)
			tt.act(t, f)
		})
	}
}

func TestDeleteByNameWithoutInput(t *testing.T) {
	f := newFixture(t, "")
	f.seed(t)

	_, err := f.svc.DeleteByName(context.Background())
	assert.Error(t, err)
}

func TestPurge(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "")
	f.seed(t)

	n, err := f.svc.Purge(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	people, err := f.svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, people)

	n, err = f.svc.Purge(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
