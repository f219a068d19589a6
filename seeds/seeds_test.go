package seeds

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/actuallystonmai/nutriguide-service/internal/classifier"
	"github.com/actuallystonmai/nutriguide-service/internal/domain"
	"github.com/actuallystonmai/nutriguide-service/internal/model"
)

func TestDataset(t *testing.T) {
	facts := Dataset()
	require.Len(t, facts, len(dishes))

	seen := make(map[string]bool, len(facts))
	for _, f := range facts {
		assert.False(t, seen[f.Item], "duplicate %s", f.Item)
		seen[f.Item] = true
	}

	for _, item := range []string{"Sate Ayam", "Bubur Ayam", "Soto Ayam", "Ikan Bakar", "Bakso Ayam"} {
		assert.True(t, seen[item], "alias target %s missing", item)
	}

	nasiUduk := facts[12]
	require.Equal(t, "Nasi Uduk", nasiUduk.Item)
	assert.Nil(t, nasiUduk.GoalScores[4])
	require.NotNil(t, nasiUduk.GoalScores[2])
	assert.Equal(t, 8.4, *nasiUduk.GoalScores[2])
}

func TestDataset_CoversMostClassifierLabels(t *testing.T) {
	seen := make(map[string]bool)
	for _, f := range Dataset() {
		seen[f.Item] = true
	}
	missing := 0
	for _, label := range classifier.ClassLabels {
		if !seen[classifier.NutritionItem(classifier.ReadableLabel(label))] {
			missing++
		}
	}
	assert.Equal(t, 2, missing)
}

func TestBuildFeatures(t *testing.T) {
	facts := Dataset()
	features, err := BuildFeatures(facts)
	require.NoError(t, err)

	require.Len(t, features.Catalog, len(facts))
	assert.Equal(t, len(facts), features.Matrix.Len())
	assert.Len(t, features.GoalScaler.Mean, domain.GoalDims)

	// each scaled goal column has mean 0
	for d := 0; d < domain.GoalDims; d++ {
		var sum float64
		for _, item := range features.Catalog {
			sum += item.Goals[d]
		}
		assert.InDelta(t, 0, sum/float64(len(facts)), 1e-9)
	}

	// a missing goal score is imputed with the column mean
	nasiUduk := features.Catalog[12]
	assert.InDelta(t, 0, nasiUduk.Goals[4], 1e-9)

	for _, a := range features.Matrix.Items() {
		s, err := features.Matrix.Score(a, a)
		require.NoError(t, err)
		assert.InDelta(t, 1, s, 1e-9)
	}
}

func TestBuildFeatures_Ranking(t *testing.T) {
	features, err := BuildFeatures(Dataset())
	require.NoError(t, err)
	catalog, err := domain.NewCatalog(features.Catalog)
	require.NoError(t, err)
	enc, err := model.NewGoalEncoder(features.GoalScaler)
	require.NoError(t, err)

	raw, err := model.OneHotGoal(domain.GoalMuscleDevelopment)
	require.NoError(t, err)
	query, err := enc.Encode(raw)
	require.NoError(t, err)

	recs, err := model.RankByGoals(query, catalog, 20)
	require.NoError(t, err)
	require.Len(t, recs, 20)
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].Score, recs[i].Score)
	}
	for _, r := range recs {
		assert.False(t, math.IsNaN(r.Score))
	}
}

func TestBuildFeatures_Empty(t *testing.T) {
	_, err := BuildFeatures(nil)
	assert.Error(t, err)
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "($1, $2), ($3, $4)", placeholders(2, 2))
	assert.Equal(t, "($1, $2, $3)", placeholders(1, 3))
}

// recordingTx is a pgx.Tx that records statements and fails the one whose
// text contains failOn.
type recordingTx struct {
	pgx.Tx
	failOn     string
	statements []string
	committed  bool
	rolledBack bool
}

func (tx *recordingTx) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	tx.statements = append(tx.statements, sql)
	if tx.failOn != "" && strings.Contains(sql, tx.failOn) {
		return pgconn.CommandTag{}, errors.New("insert failed")
	}
	return pgconn.CommandTag{}, nil
}

func (tx *recordingTx) Commit(context.Context) error {
	if tx.committed || tx.rolledBack {
		return pgx.ErrTxClosed
	}
	tx.committed = true
	return nil
}

func (tx *recordingTx) Rollback(context.Context) error {
	if tx.committed || tx.rolledBack {
		return pgx.ErrTxClosed
	}
	tx.rolledBack = true
	return nil
}

type txBeginner struct {
	tx  *recordingTx
	err error
}

func (b *txBeginner) Begin(context.Context) (pgx.Tx, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.tx, nil
}

func TestSetup_CommitsAllTables(t *testing.T) {
	tx := &recordingTx{}
	err := Setup(context.Background(), &txBeginner{tx: tx}, zap.NewNop())
	require.NoError(t, err)

	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
	require.Len(t, tx.statements, 5)
	assert.Contains(t, tx.statements[0], "TRUNCATE")
	assert.Contains(t, tx.statements[4], "nutrient_similarity")
}

func TestSetup_RollsBackOnPartialFailure(t *testing.T) {
	for _, table := range []string{"catalog_features", "goal_scaler", "nutrient_similarity"} {
		t.Run(table, func(t *testing.T) {
			tx := &recordingTx{failOn: "INSERT INTO " + table}
			err := Setup(context.Background(), &txBeginner{tx: tx}, zap.NewNop())
			require.Error(t, err)

			assert.False(t, tx.committed)
			assert.True(t, tx.rolledBack)
			assert.Contains(t, tx.statements[1], "INSERT INTO food_items")
		})
	}
}

func TestSetup_BeginFailure(t *testing.T) {
	err := Setup(context.Background(), &txBeginner{err: errors.New("connection refused")}, zap.NewNop())
	assert.Error(t, err)
}
