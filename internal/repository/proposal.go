package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/crime_observatory/internal/models"
)

const proposalColumns = "id, title, description, category, locality, author_name, status, created_at"

// ProposalRepository гражданские инициативы (proposals)
type ProposalRepository struct {
	db querier
}

func NewProposalRepository(db querier) *ProposalRepository {
	return &ProposalRepository{db: db}
}

// Create сохраняет инициативу, заполняя ID и CreatedAt
func (r *ProposalRepository) Create(ctx context.Context, p *models.Proposal) error {
	query := `
		INSERT INTO proposals (title, description, category, locality, author_name, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		p.Title,
		p.Description,
		p.Category,
		p.Locality,
		p.AuthorName,
		p.Status,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create proposal: %w", err)
	}
	return nil
}

// List возвращает инициативы от новых к старым; пустой status - без фильтра
func (r *ProposalRepository) List(ctx context.Context, status string) ([]*models.Proposal, error) {
	q := psql.Select(proposalColumns).From("proposals")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	sql, args, err := q.OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build proposals query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}
	defer rows.Close()

	proposals := make([]*models.Proposal, 0)
	for rows.Next() {
		p := &models.Proposal{}
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.Locality, &p.AuthorName, &p.Status, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan proposal row: %w", err)
		}
		proposals = append(proposals, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return proposals, nil
}

// UpdateStatus меняет статус и возвращает обновленную запись
func (r *ProposalRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Proposal, error) {
	query := `UPDATE proposals SET status = $1 WHERE id = $2 RETURNING ` + proposalColumns + `;`
	p := &models.Proposal{}
	err := r.db.QueryRow(ctx, query, status, id).Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Category,
		&p.Locality,
		&p.AuthorName,
		&p.Status,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update proposal %s: %w", id, mapError(err))
	}
	return p, nil
}
