// Package mcp exposes the region selection engine as an MCP tool server.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aretw0/wilayah/internal/cascade"
	"github.com/aretw0/wilayah/internal/presentation/graph"
	"github.com/aretw0/wilayah/internal/presentation/tui"
	"github.com/aretw0/wilayah/pkg/adapters/query"
	"github.com/aretw0/wilayah/pkg/domain"
	"github.com/aretw0/wilayah/pkg/ports"
	"github.com/aretw0/wilayah/pkg/session"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

// Resource URIs.
const (
	SummaryURI = "wilayah://dataset/summary"
	TreeURI    = "wilayah://dataset/tree"
)

// SelectResult is the structured output of select_region and describe_selection.
type SelectResult struct {
	Selection  domain.Selection      `json:"selection" jsonschema_description:"The settled selection"`
	Query      string                `json:"query" jsonschema_description:"Query-string encoding of the selection"`
	Breadcrumb string                `json:"breadcrumb" jsonschema_description:"Indonesia > Province > Regency > District"`
	View       domain.View           `json:"view" jsonschema_description:"Option lists and resolved records"`
	Diff       *domain.SelectionDiff `json:"diff,omitempty" jsonschema_description:"Levels changed by the action"`
}

// Summary is the content of the dataset summary resource.
type Summary struct {
	Available bool         `json:"available"`
	Stats     domain.Stats `json:"stats"`
}

// Server wraps the selection engine and exposes it as an MCP server.
type Server struct {
	engine    ports.SelectionEngine
	sessions  *session.Manager
	mcpServer *server.MCPServer
}

// Option configures a Server.
type Option func(*serverConfig)

type serverConfig struct {
	version  string
	sessions *session.Manager
}

// WithVersion sets the version announced to clients.
func WithVersion(v string) Option {
	return func(c *serverConfig) { c.version = v }
}

// WithSessions lets select_region keep the selection under a session id.
func WithSessions(m *session.Manager) Option {
	return func(c *serverConfig) { c.sessions = m }
}

// NewServer creates a new MCP server instance.
func NewServer(engine ports.SelectionEngine, opts ...Option) *Server {
	cfg := serverConfig{version: "dev"}
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &Server{
		engine:    engine,
		sessions:  cfg.sessions,
		mcpServer: server.NewMCPServer("wilayah-mcp", cfg.version),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer exposes the underlying server, e.g. for an SSE transport.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("list_provinces",
		mcp.WithDescription("List every province of Indonesia in dataset order."),
	), s.handleListProvinces)

	s.mcpServer.AddTool(mcp.NewTool("list_regencies",
		mcp.WithDescription("List the cities/regencies (kota/kabupaten) of a province."),
		mcp.WithNumber("province_id", mcp.Required(), mcp.Description("Province id")),
	), s.handleListRegencies)

	s.mcpServer.AddTool(mcp.NewTool("list_districts",
		mcp.WithDescription("List the districts (kecamatan) of a city/regency."),
		mcp.WithNumber("regency_id", mcp.Required(), mcp.Description("City/regency id")),
	), s.handleListDistricts)

	s.mcpServer.AddTool(mcp.NewTool("select_region",
		mcp.WithDescription("Apply one selection step. Changing a level clears the levels below it."),
		mcp.WithString("action", mcp.Required(),
			mcp.Enum(string(domain.ActionSetProvince), string(domain.ActionSetRegency), string(domain.ActionSetDistrict), string(domain.ActionReset)),
			mcp.Description("The operation to apply")),
		mcp.WithNumber("id", mcp.Description("Region id; omit to clear the level")),
		mcp.WithString("query", mcp.Description("Current selection as a query string, e.g. province=32&regency=3273")),
		mcp.WithString("session", mcp.Description("Keep the selection server-side under this id instead of passing query")),
		mcp.WithOutputSchema[SelectResult](),
	), mcp.NewStructuredToolHandler(s.handleSelect))

	s.mcpServer.AddTool(mcp.NewTool("describe_selection",
		mcp.WithDescription("Describe a selection: breadcrumb, detail and the options at each level."),
		mcp.WithString("query", mcp.Description("Selection as a query string")),
		mcp.WithString("session", mcp.Description("Read the selection stored under this id")),
	), s.handleDescribe)
}

// args decodes tool arguments; JSON numbers arrive as float64.
func args(request mcp.CallToolRequest, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(request.GetArguments())
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func (s *Server) handleListProvinces(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ds := s.engine.Dataset()
	if ds == nil {
		return mcp.NewToolResultError(domain.ErrDatasetUnavailable.Error()), nil
	}
	return jsonResult(ds.Provinces)
}

func (s *Server) handleListRegencies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in struct {
		ProvinceID *int64 `mapstructure:"province_id"`
	}
	if err := args(request, &in); err != nil || in.ProvinceID == nil {
		return mcp.NewToolResultError("province_id must be an integer"), nil
	}
	ds := s.engine.Dataset()
	if ds == nil {
		return mcp.NewToolResultError(domain.ErrDatasetUnavailable.Error()), nil
	}
	return jsonResult(cascade.RegencyOptions(ds, domain.Some(domain.RegionID(*in.ProvinceID))))
}

func (s *Server) handleListDistricts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in struct {
		RegencyID *int64 `mapstructure:"regency_id"`
	}
	if err := args(request, &in); err != nil || in.RegencyID == nil {
		return mcp.NewToolResultError("regency_id must be an integer"), nil
	}
	ds := s.engine.Dataset()
	if ds == nil {
		return mcp.NewToolResultError(domain.ErrDatasetUnavailable.Error()), nil
	}
	return jsonResult(cascade.DistrictOptions(ds, domain.Some(domain.RegionID(*in.RegencyID))))
}

type selectArgs struct {
	Action  string `mapstructure:"action"`
	ID      *int64 `mapstructure:"id"`
	Query   string `mapstructure:"query"`
	Session string `mapstructure:"session"`
}

func (s *Server) handleSelect(ctx context.Context, request mcp.CallToolRequest, raw map[string]any) (SelectResult, error) {
	var in selectArgs
	if err := args(request, &in); err != nil {
		return SelectResult{}, fmt.Errorf("invalid arguments: %w", err)
	}
	action := domain.Action{Type: domain.ActionType(in.Action)}
	if in.ID != nil {
		action.ID = domain.Some(domain.RegionID(*in.ID))
	}
	if err := action.Validate(); err != nil {
		return SelectResult{}, err
	}

	var before, after domain.Selection
	if in.Session != "" && s.sessions != nil {
		var err error
		before, after, err = s.sessions.Apply(ctx, in.Session, action)
		if err != nil {
			return SelectResult{}, err
		}
	} else {
		current, err := decodeQuery(in.Query)
		if err != nil {
			return SelectResult{}, err
		}
		before = current
		after, err = s.engine.Apply(ctx, current, action)
		if err != nil {
			return SelectResult{}, err
		}
	}
	return s.result(ctx, before, after)
}

func (s *Server) result(ctx context.Context, before, after domain.Selection) (SelectResult, error) {
	v, err := s.engine.View(ctx, after)
	if err != nil {
		return SelectResult{}, err
	}
	params := query.New()
	cascade.Encode(after, params)
	return SelectResult{
		Selection:  after,
		Query:      params.Encode(),
		Breadcrumb: tui.Breadcrumb(v),
		View:       v,
		Diff:       domain.Diff(before, after),
	}, nil
}

func decodeQuery(raw string) (domain.Selection, error) {
	params, err := query.Parse(raw)
	if err != nil {
		return domain.Selection{}, fmt.Errorf("invalid query: %w", err)
	}
	return cascade.Decode(params), nil
}

func (s *Server) handleDescribe(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in selectArgs
	if err := args(request, &in); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	var sel domain.Selection
	if in.Session != "" && s.sessions != nil {
		var err error
		sel, err = s.sessions.LoadOrEmpty(ctx, in.Session)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	} else {
		var err error
		sel, err = decodeQuery(in.Query)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	v, err := s.engine.View(ctx, sel)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	md := tui.Markdown(v)
	for _, level := range domain.Levels {
		if level != domain.LevelProvince && !sel.Get(parent(level)).Valid {
			break
		}
		md += "\n" + tui.Options(v, level)
	}
	return mcp.NewToolResultText(md), nil
}

func parent(l domain.Level) domain.Level {
	if l == domain.LevelDistrict {
		return domain.LevelRegency
	}
	return domain.LevelProvince
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(SummaryURI, "Dataset Summary",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		b, _ := json.Marshal(s.summary())
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      SummaryURI,
				MIMEType: "application/json",
				Text:     string(b),
			},
		}, nil
	})

	s.mcpServer.AddResource(mcp.NewResource(TreeURI, "Province and Regency Tree",
		mcp.WithMIMEType("text/vnd.mermaid"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		ds := s.engine.Dataset()
		if ds == nil {
			return nil, domain.ErrDatasetUnavailable
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      TreeURI,
				MIMEType: "text/vnd.mermaid",
				Text:     graph.GenerateMermaid(ds, graph.Options{Depth: domain.LevelRegency}, nil),
			},
		}, nil
	})
}

func (s *Server) summary() Summary {
	ds := s.engine.Dataset()
	if ds == nil {
		return Summary{}
	}
	return Summary{Available: true, Stats: ds.Stats()}
}
