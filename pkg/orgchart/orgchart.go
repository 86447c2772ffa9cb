package orgchart

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/orgstruct/bff/pkg/errx"
	"github.com/orgstruct/bff/pkg/kernel"
)

// ============================================================================
// Entities
// ============================================================================

// Employee is a published staff record
type Employee struct {
	ID        int64    `db:"id" json:"id"`
	FirstName string   `db:"first_name" json:"first_name"`
	LastName  string   `db:"last_name" json:"last_name"`
	Position  *string  `db:"position" json:"position,omitempty"`
	AvatarURL *string  `db:"avatar_url" json:"avatar_url,omitempty"`
	Tags      string   `db:"tags" json:"tags"` // comma-separated
	Project   *string  `db:"project" json:"project,omitempty"`
	Duties    []string `db:"-" json:"duties"`
	ChiefID   *int64   `db:"chief_id" json:"chief_id,omitempty"`
}

// Project groups employees under leaders
type Project struct {
	ID           int64         `db:"id" json:"id"`
	Name         string        `db:"name" json:"name"`
	ImageURL     *string       `db:"image_url" json:"image_url,omitempty"`
	LeaderGroups []LeaderGroup `db:"-" json:"leader_groups"`
}

// LeaderGroup is one leader with their direct reports inside a project
type LeaderGroup struct {
	Leader    *Employee  `json:"leader"`
	Employees []Employee `json:"employees"`
}

// Graph is the chart editor's raw node/edge payload, stored opaquely
type Graph struct {
	Nodes json.RawMessage `json:"nodes"`
	Edges json.RawMessage `json:"edges"`
}

// EmptyGraph returns the zero payload the editor expects
func EmptyGraph() Graph {
	return Graph{
		Nodes: json.RawMessage("[]"),
		Edges: json.RawMessage("[]"),
	}
}

// GlobalConfig is the persisted chart layout (draft-and-publish)
type GlobalConfig struct {
	ID       kernel.DocumentID `json:"id"`
	Peoples  Graph             `json:"peoples"`
	Projects Graph             `json:"projects"`
}

// ChartNode is the flat record the chart UI consumes; pid links a node
// to its parent.
type ChartNode struct {
	ID               int64    `json:"id"`
	PID              *int64   `json:"pid,omitempty"`
	Name             string   `json:"name"`
	Title            *string  `json:"title"`
	Img              string   `json:"img"`
	Tags             []string `json:"tags"`
	Projects         []string `json:"projects"`
	Responsibilities []string `json:"responsibilities"`
}

// ============================================================================
// Mapping
// ============================================================================

const (
	// DefaultAvatar is used when a record has no image
	DefaultAvatar = "/avatar.png"

	// LeaderIDOffset shifts leader node ids so an employee appearing both
	// in the staff chart and as a project leader gets distinct nodes.
	LeaderIDOffset = 100000000
)

// ShortName renders "F.Lastname" from the name parts
func ShortName(first, last string) string {
	f := strings.TrimSpace(first)
	l := strings.TrimSpace(last)
	if f == "" && l == "" {
		return ""
	}
	if f == "" {
		return l
	}
	initial := string([]rune(f)[0])
	return strings.TrimSpace(initial + "." + l)
}

// NormalizeImageURL falls back to the placeholder avatar
func NormalizeImageURL(url *string) string {
	if url == nil || strings.TrimSpace(*url) == "" {
		return DefaultAvatar
	}
	return *url
}

// SplitTags splits the comma-separated tag field, dropping blanks
func SplitTags(tags string) []string {
	out := make([]string, 0)
	for _, t := range strings.Split(tags, ",") {
		if trimmed := strings.TrimSpace(t); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ToNode maps an employee to a chart node
func (e Employee) ToNode() ChartNode {
	node := ChartNode{
		ID:               e.ID,
		Name:             ShortName(e.FirstName, e.LastName),
		Title:            e.Position,
		Img:              NormalizeImageURL(e.AvatarURL),
		Tags:             SplitTags(e.Tags),
		Projects:         []string{},
		Responsibilities: e.Duties,
	}
	if node.Responsibilities == nil {
		node.Responsibilities = []string{}
	}
	if e.ChiefID != nil {
		pid := *e.ChiefID
		node.PID = &pid
	}
	if e.Project != nil && *e.Project != "" {
		node.Projects = []string{*e.Project}
	}
	return node
}

// ToNode maps a project to a chart node
func (p Project) ToNode() ChartNode {
	projects := []string{}
	if p.Name != "" {
		projects = []string{p.Name}
	}
	return ChartNode{
		ID:               p.ID,
		Name:             p.Name,
		Title:            nil,
		Img:              NormalizeImageURL(p.ImageURL),
		Tags:             []string{"project"},
		Projects:         projects,
		Responsibilities: []string{},
	}
}

// ============================================================================
// Error Registry
// ============================================================================

var ErrRegistry = errx.NewRegistry("CHART")

var (
	CodeConfigNotFound = ErrRegistry.Register("CONFIG_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Global config not found")
	CodeInvalidPayload = ErrRegistry.Register("INVALID_PAYLOAD", errx.TypeValidation, http.StatusBadRequest, "Invalid config payload")
)

func ErrConfigNotFound() *errx.Error {
	return ErrRegistry.New(CodeConfigNotFound)
}

func ErrInvalidPayload() *errx.Error {
	return ErrRegistry.New(CodeInvalidPayload)
}
