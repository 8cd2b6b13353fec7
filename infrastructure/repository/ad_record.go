package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/lead-radar-api/infrastructure/database/postgres"
	"github.com/vfg2006/lead-radar-api/internal/domain"
)

const adRecordsTable = "ad_records"

// Tamanho do lote de inserção; o dataset completo pode ter centenas de
// milhares de linhas
const insertBatchSize = 500

type AdRecordRepository interface {
	SaveBatch(ads []domain.AdRecord) error
	ListAll() ([]domain.AdRecord, error)
	Count() (int, error)
}

type adRecordRepository struct {
	conn *postgres.Connection
}

func NewAdRecordRepository(conn *postgres.Connection) AdRecordRepository {
	return &adRecordRepository{
		conn: conn,
	}
}

// SaveBatch insere os anúncios em lotes, ignorando ad_ids já conhecidos
// (o dataset do ator é cumulativo entre execuções)
func (r *adRecordRepository) SaveBatch(ads []domain.AdRecord) error {
	for start := 0; start < len(ads); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(ads) {
			end = len(ads)
		}

		queryBuilder := squirrel.
			Insert(adRecordsTable).
			Columns(
				"ad_id",
				"advertiser_id",
				"advertiser_name",
				"advertiser_category",
				"cta_type",
				"destination_url",
				"platforms",
				"body_text",
				"active",
				"start_date",
				"end_date",
				"page_popularity",
			)

		for _, ad := range ads[start:end] {
			queryBuilder = queryBuilder.Values(
				ad.AdID,
				ad.AdvertiserID,
				ad.AdvertiserName,
				ad.AdvertiserCategory,
				ad.CTAType,
				ad.DestinationURL,
				pq.Array(ad.Platforms),
				ad.BodyText,
				ad.Active,
				ad.StartDate,
				ad.EndDate,
				ad.PagePopularity,
			)
		}

		adsSQL, adsArgs, err := queryBuilder.
			Suffix("ON CONFLICT (ad_id) DO NOTHING").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir insert de anúncios: %w", err)
		}

		if _, err := r.conn.Exec(adsSQL, adsArgs...); err != nil {
			return fmt.Errorf("erro ao inserir lote de anúncios: %w", err)
		}
	}

	return nil
}

func (r *adRecordRepository) ListAll() ([]domain.AdRecord, error) {
	adsSQL, adsArgs, err := squirrel.
		Select(
			"ad_id",
			"advertiser_id",
			"advertiser_name",
			"advertiser_category",
			"cta_type",
			"destination_url",
			"platforms",
			"body_text",
			"active",
			"start_date",
			"end_date",
			"page_popularity",
		).
		From(adRecordsTable).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(adsSQL, adsArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar anúncios: %w", err)
	}
	defer rows.Close()

	ads := make([]domain.AdRecord, 0)
	for rows.Next() {
		var ad domain.AdRecord
		var platforms pq.StringArray
		var startDate, endDate *time.Time

		if err := rows.Scan(
			&ad.AdID,
			&ad.AdvertiserID,
			&ad.AdvertiserName,
			&ad.AdvertiserCategory,
			&ad.CTAType,
			&ad.DestinationURL,
			&platforms,
			&ad.BodyText,
			&ad.Active,
			&startDate,
			&endDate,
			&ad.PagePopularity,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear anúncio: %w", err)
		}

		ad.Platforms = platforms
		ad.StartDate = startDate
		ad.EndDate = endDate
		ads = append(ads, ad)
	}

	return ads, rows.Err()
}

func (r *adRecordRepository) Count() (int, error) {
	countSQL, countArgs, err := squirrel.
		Select("COUNT(*)").
		From(adRecordsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.conn.QueryRow(countSQL, countArgs...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
