package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SanaUllah13/youtools-go/internal/model"
)

// AnalysisRepo persists analysis history. The pool may be nil (no database
// configured); every method is then a silent no-op so the pipeline never
// depends on history being available.
type AnalysisRepo struct {
	pool *pgxpool.Pool
}

func NewAnalysisRepo(pool *pgxpool.Pool) *AnalysisRepo {
	return &AnalysisRepo{pool: pool}
}

// Enabled reports whether history persistence is active.
func (r *AnalysisRepo) Enabled() bool {
	return r != nil && r.pool != nil
}

// Insert records one completed analysis.
func (r *AnalysisRepo) Insert(ctx context.Context, rec model.AnalysisRecord) error {
	if !r.Enabled() {
		return nil
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO analyses (input_key, raw_input, main_niche, sub_niche, display_name,
		                      market_score, competition_score, monetization_score,
		                      video_count, channel_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		rec.InputKey, rec.RawInput, rec.MainNiche, rec.SubNiche, rec.DisplayName,
		rec.MarketScore, rec.CompetitionScore, rec.MonetizationScore,
		rec.VideoCount, rec.ChannelCount)
	return err
}

// GetStats returns aggregate analysis statistics.
func (r *AnalysisRepo) GetStats(ctx context.Context) (*model.StatsResponse, error) {
	if !r.Enabled() {
		return &model.StatsResponse{TopNiches: []model.NicheCount{}}, nil
	}

	var stats model.StatsResponse
	err := r.pool.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(DISTINCT main_niche),
			COUNT(*) FILTER (WHERE created_at > NOW() - INTERVAL '24 hours'),
			COALESCE(AVG(market_score), 0),
			COALESCE(AVG(competition_score), 0),
			COALESCE(AVG(monetization_score), 0)
		FROM analyses`).Scan(
		&stats.TotalAnalyses, &stats.DistinctNiches, &stats.AnalysesLast24h,
		&stats.AvgMarketScore, &stats.AvgCompetitionScore, &stats.AvgMonetizationScore)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT main_niche, COUNT(*) AS n
		FROM analyses
		GROUP BY main_niche
		ORDER BY n DESC
		LIMIT 5`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats.TopNiches = []model.NicheCount{}
	for rows.Next() {
		var nc model.NicheCount
		if err := rows.Scan(&nc.Niche, &nc.Count); err != nil {
			return nil, err
		}
		stats.TopNiches = append(stats.TopNiches, nc)
	}
	return &stats, rows.Err()
}

// Recent returns the most recent analyses, newest first.
func (r *AnalysisRepo) Recent(ctx context.Context, limit int) ([]model.AnalysisRecord, error) {
	if !r.Enabled() {
		return []model.AnalysisRecord{}, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT input_key, raw_input, main_niche, sub_niche, display_name,
		       market_score, competition_score, monetization_score,
		       video_count, channel_count, created_at
		FROM analyses
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []model.AnalysisRecord{}
	for rows.Next() {
		var rec model.AnalysisRecord
		err := rows.Scan(
			&rec.InputKey, &rec.RawInput, &rec.MainNiche, &rec.SubNiche, &rec.DisplayName,
			&rec.MarketScore, &rec.CompetitionScore, &rec.MonetizationScore,
			&rec.VideoCount, &rec.ChannelCount, &rec.CreatedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// TopInputs returns the most frequently analyzed raw inputs over the last
// window, for the cache refresh worker.
func (r *AnalysisRepo) TopInputs(ctx context.Context, limit int) ([]string, error) {
	if !r.Enabled() {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT raw_input
		FROM analyses
		WHERE created_at > NOW() - INTERVAL '7 days'
		GROUP BY raw_input
		ORDER BY COUNT(*) DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var inputs []string
	for rows.Next() {
		var in string
		if err := rows.Scan(&in); err != nil {
			return nil, err
		}
		inputs = append(inputs, in)
	}
	return inputs, rows.Err()
}
