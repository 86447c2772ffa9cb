package orgchartinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/orgstruct/bff/pkg/errx"
	"github.com/orgstruct/bff/pkg/kernel"
	"github.com/orgstruct/bff/pkg/orgchart"
)

// ============================================================================
// Employees
// ============================================================================

type PostgresEmployeeRepository struct {
	db *sqlx.DB
}

func NewPostgresEmployeeRepository(db *sqlx.DB) orgchart.EmployeeRepository {
	return &PostgresEmployeeRepository{db: db}
}

type employeeRow struct {
	ID        int64          `db:"id"`
	FirstName string         `db:"first_name"`
	LastName  string         `db:"last_name"`
	Position  *string        `db:"position"`
	AvatarURL *string        `db:"avatar_url"`
	Tags      string         `db:"tags"`
	Project   *string        `db:"project"`
	ChiefID   *int64         `db:"chief_id"`
	Duties    pq.StringArray `db:"duties"`
}

func (row employeeRow) toEntity() orgchart.Employee {
	return orgchart.Employee{
		ID:        row.ID,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Position:  row.Position,
		AvatarURL: row.AvatarURL,
		Tags:      row.Tags,
		Project:   row.Project,
		ChiefID:   row.ChiefID,
		Duties:    []string(row.Duties),
	}
}

func (r *PostgresEmployeeRepository) FindAllPublished(ctx context.Context, limit int) ([]orgchart.Employee, error) {
	query := `
		SELECT id, first_name, last_name, position, avatar_url, tags, project, chief_id, duties
		FROM employees
		WHERE published_at IS NOT NULL
		ORDER BY id ASC
		LIMIT $1`

	var rows []employeeRow
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, errx.Wrap(err, "failed to read employees", errx.TypeInternal)
	}

	employees := make([]orgchart.Employee, 0, len(rows))
	for _, row := range rows {
		employees = append(employees, row.toEntity())
	}
	return employees, nil
}

// ============================================================================
// Projects
// ============================================================================

type PostgresProjectRepository struct {
	db *sqlx.DB
}

func NewPostgresProjectRepository(db *sqlx.DB) orgchart.ProjectRepository {
	return &PostgresProjectRepository{db: db}
}

type projectRow struct {
	ID       int64   `db:"id"`
	Name     string  `db:"name"`
	ImageURL *string `db:"image_url"`
}

type groupRow struct {
	ID        int64 `db:"id"`
	ProjectID int64 `db:"project_id"`
	LeaderID  int64 `db:"leader_id"`
}

func (r *PostgresProjectRepository) FindAllPublished(ctx context.Context, limit int) ([]orgchart.Project, error) {
	var projRows []projectRow
	err := r.db.SelectContext(ctx, &projRows, `
		SELECT id, name, image_url
		FROM projects
		WHERE published_at IS NOT NULL
		ORDER BY id ASC
		LIMIT $1`, limit)
	if err != nil {
		return nil, errx.Wrap(err, "failed to read projects", errx.TypeInternal)
	}
	if len(projRows) == 0 {
		return nil, nil
	}

	projectIDs := make([]int64, 0, len(projRows))
	for _, p := range projRows {
		projectIDs = append(projectIDs, p.ID)
	}

	var groups []groupRow
	err = r.db.SelectContext(ctx, &groups, `
		SELECT id, project_id, leader_id
		FROM project_leader_groups
		WHERE project_id = ANY($1)
		ORDER BY id ASC`, pq.Array(projectIDs))
	if err != nil {
		return nil, errx.Wrap(err, "failed to read leader groups", errx.TypeInternal)
	}

	groupsByProject := make(map[int64][]groupRow)
	for _, g := range groups {
		groupsByProject[g.ProjectID] = append(groupsByProject[g.ProjectID], g)
	}

	projects := make([]orgchart.Project, 0, len(projRows))
	for _, p := range projRows {
		project := orgchart.Project{
			ID:       p.ID,
			Name:     p.Name,
			ImageURL: p.ImageURL,
		}

		for _, g := range groupsByProject[p.ID] {
			leader, err := r.findEmployee(ctx, g.LeaderID)
			if err != nil {
				return nil, err
			}
			members, err := r.findGroupMembers(ctx, g.ID)
			if err != nil {
				return nil, err
			}
			project.LeaderGroups = append(project.LeaderGroups, orgchart.LeaderGroup{
				Leader:    leader,
				Employees: members,
			})
		}

		projects = append(projects, project)
	}

	return projects, nil
}

func (r *PostgresProjectRepository) findEmployee(ctx context.Context, id int64) (*orgchart.Employee, error) {
	var row employeeRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, first_name, last_name, position, avatar_url, tags, project, chief_id, duties
		FROM employees
		WHERE id = $1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errx.Wrap(err, "failed to read group leader", errx.TypeInternal).
			WithDetail("employee_id", id)
	}
	entity := row.toEntity()
	return &entity, nil
}

func (r *PostgresProjectRepository) findGroupMembers(ctx context.Context, groupID int64) ([]orgchart.Employee, error) {
	var rows []employeeRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT e.id, e.first_name, e.last_name, e.position, e.avatar_url, e.tags, e.project, e.chief_id, e.duties
		FROM employees e
		JOIN project_group_members m ON m.employee_id = e.id
		WHERE m.group_id = $1
		ORDER BY e.id ASC`, groupID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to read group members", errx.TypeInternal).
			WithDetail("group_id", groupID)
	}

	members := make([]orgchart.Employee, 0, len(rows))
	for _, row := range rows {
		members = append(members, row.toEntity())
	}
	return members, nil
}

// ============================================================================
// Global Config
// ============================================================================

type PostgresGlobalConfigRepository struct {
	db *sqlx.DB
}

func NewPostgresGlobalConfigRepository(db *sqlx.DB) orgchart.GlobalConfigRepository {
	return &PostgresGlobalConfigRepository{db: db}
}

type configRow struct {
	ID       string          `db:"id"`
	Peoples  json.RawMessage `db:"peoples"`
	Projects json.RawMessage `db:"projects"`
}

func (row configRow) toEntity() (*orgchart.GlobalConfig, error) {
	cfg := &orgchart.GlobalConfig{
		ID:       kernel.DocumentID(row.ID),
		Peoples:  orgchart.EmptyGraph(),
		Projects: orgchart.EmptyGraph(),
	}
	if len(row.Peoples) > 0 {
		if err := json.Unmarshal(row.Peoples, &cfg.Peoples); err != nil {
			return nil, errx.Wrap(err, "failed to decode peoples graph", errx.TypeInternal)
		}
	}
	if len(row.Projects) > 0 {
		if err := json.Unmarshal(row.Projects, &cfg.Projects); err != nil {
			return nil, errx.Wrap(err, "failed to decode projects graph", errx.TypeInternal)
		}
	}
	return cfg, nil
}

func (r *PostgresGlobalConfigRepository) FindPublished(ctx context.Context) (*orgchart.GlobalConfig, error) {
	var row configRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, peoples, projects
		FROM global_config
		WHERE published_at IS NOT NULL
		ORDER BY updated_at DESC
		LIMIT 1`)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, orgchart.ErrConfigNotFound()
		}
		return nil, errx.Wrap(err, "failed to read global config", errx.TypeInternal)
	}
	return row.toEntity()
}

func (r *PostgresGlobalConfigRepository) Upsert(ctx context.Context, peoples, projects orgchart.Graph) (*orgchart.GlobalConfig, error) {
	peoplesJSON, err := json.Marshal(peoples)
	if err != nil {
		return nil, errx.Wrap(err, "failed to encode peoples graph", errx.TypeInternal)
	}
	projectsJSON, err := json.Marshal(projects)
	if err != nil {
		return nil, errx.Wrap(err, "failed to encode projects graph", errx.TypeInternal)
	}

	now := time.Now().UTC()

	var existingID string
	err = r.db.GetContext(ctx, &existingID, `SELECT id FROM global_config ORDER BY updated_at DESC LIMIT 1`)
	switch {
	case err == sql.ErrNoRows:
		existingID = kernel.NewDocumentID().String()
		_, err = r.db.ExecContext(ctx, `
			INSERT INTO global_config (id, peoples, projects, created_at, updated_at, published_at)
			VALUES ($1, $2, $3, $4, $4, $4)`,
			existingID, peoplesJSON, projectsJSON, now)
		if err != nil {
			return nil, errx.Wrap(err, "failed to create global config", errx.TypeInternal)
		}
	case err != nil:
		return nil, errx.Wrap(err, "failed to look up global config", errx.TypeInternal)
	default:
		// Update then publish
		_, err = r.db.ExecContext(ctx, `
			UPDATE global_config
			SET peoples = $1, projects = $2, updated_at = $3, published_at = $3
			WHERE id = $4`,
			peoplesJSON, projectsJSON, now, existingID)
		if err != nil {
			return nil, errx.Wrap(err, "failed to update global config", errx.TypeInternal)
		}
	}

	return r.FindPublished(ctx)
}
