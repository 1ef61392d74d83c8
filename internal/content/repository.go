package content

import (
	"context"
	"fmt"

	"eaglegym/internal/logger"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const recordColumns = `id, branch_id, data_type,
		name, description, title_en, title_ar, description_en, description_ar,
		price, original_price, features,
		image_url, role, specialization, years_experience,
		day_of_week, "time", duration_minutes, coach_name, class_type, booking_required,
		sessions_count, pt_sessions_included, guest_invites, freeze_weeks,
		discount_percentage, discount_amount, valid_from, valid_until,
		applicable_to, terms_conditions, promo_code,
		schedule, metadata, display_order, is_active`

// orderColumns whitelists the columns FetchOptions.OrderBy may name.
var orderColumns = map[string]bool{
	"display_order":  true,
	"price":          true,
	"original_price": true,
	"name":           true,
	"title_en":       true,
	"sessions_count": true,
	"valid_from":     true,
	"valid_until":    true,
	"created_at":     true,
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByType(ctx context.Context, branchID uuid.UUID, dataType DataType, opts FetchOptions) ([]Record, error) {
	query, args := buildFindByType(branchID, dataType, opts)

	records := []Record{}
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, err
	}

	return records, nil
}

func buildFindByType(branchID uuid.UUID, dataType DataType, opts FetchOptions) (string, []interface{}) {
	query := `
		SELECT ` + recordColumns + `
		FROM branch_data
		WHERE branch_id = $1 AND data_type = $2 AND is_active = TRUE`
	args := []interface{}{branchID, string(dataType)}

	if opts.OfferType != "" {
		args = append(args, opts.OfferType)
		query += fmt.Sprintf(" AND metadata->>'offer_type' = $%d", len(args))
	}

	orderBy := "display_order"
	if opts.OrderBy != "" {
		if orderColumns[opts.OrderBy] {
			orderBy = opts.OrderBy
		} else {
			logger.Warn("Ignoring unknown order column", "order_by", opts.OrderBy)
		}
	}
	direction := "ASC"
	if opts.Descending {
		direction = "DESC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s", orderBy, direction)

	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	return query, args
}
