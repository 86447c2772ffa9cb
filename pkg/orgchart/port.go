package orgchart

import "context"

// EmployeeRepository reads published staff records with duties populated
type EmployeeRepository interface {
	FindAllPublished(ctx context.Context, limit int) ([]Employee, error)
}

// ProjectRepository reads published projects with leader groups populated
type ProjectRepository interface {
	FindAllPublished(ctx context.Context, limit int) ([]Project, error)
}

// GlobalConfigRepository persists the chart layout with draft-and-publish
type GlobalConfigRepository interface {
	// FindPublished returns the published config, or ErrConfigNotFound
	FindPublished(ctx context.Context) (*GlobalConfig, error)

	// Upsert writes the graphs (creating the document if needed) and
	// publishes the result
	Upsert(ctx context.Context, peoples, projects Graph) (*GlobalConfig, error)
}
