package mcp

import (
	"context"
	"fmt"

	"vecstats/internal/config"

	"github.com/google/jsonschema-go/jsonschema"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

// Server exposes the sort and statistics engine as MCP tools.
type Server struct {
	cfg     *config.AppConfig
	version string
}

// NewServer creates a new MCP server.
func NewServer(cfg *config.AppConfig, version string) *Server {
	return &Server{cfg: cfg, version: version}
}

// Serve runs the MCP session over stdio until the client disconnects or ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	srv, err := s.build()
	if err != nil {
		return err
	}

	log.Info().Int("maxValues", s.cfg.MaxValues).Msg("MCP server listening on stdio")
	if err := srv.Run(ctx, &mcpsdk.StdioTransport{}); err != nil && ctx.Err() == nil {
		return fmt.Errorf("mcp session failed: %w", err)
	}
	return nil
}

func (s *Server) build() (*mcpsdk.Server, error) {
	srv := mcpsdk.NewServer(&mcpsdk.Implementation{Name: "vecstats", Version: s.version}, nil)

	sortSchema, err := s.valuesSchema()
	if err != nil {
		return nil, err
	}
	analyzeSchema, err := s.valuesSchema()
	if err != nil {
		return nil, err
	}
	pigSchema, err := jsonschema.For[PigLatinInput](nil)
	if err != nil {
		return nil, fmt.Errorf("building pig_latin schema: %w", err)
	}

	mcpsdk.AddTool(srv, &mcpsdk.Tool{
		Name:        "sort_sequence",
		Description: "Sort a list of integers ascending with an adjacent-swap (bubble) sort and report the passes, comparisons and swaps it took.",
		InputSchema: sortSchema,
	}, s.handleSortSequence)

	mcpsdk.AddTool(srv, &mcpsdk.Tool{
		Name: "analyze_sequence",
		Description: "Sort a list of integers and compute its median and mode. " +
			"The median is only defined for odd-length lists and is null otherwise. " +
			"When several values share the highest count, the smallest one is reported as the mode.",
		InputSchema: analyzeSchema,
	}, s.handleAnalyzeSequence)

	mcpsdk.AddTool(srv, &mcpsdk.Tool{
		Name:        "pig_latin",
		Description: "Translate English text into pig latin, word by word.",
		InputSchema: pigSchema,
	}, s.handlePigLatin)

	return srv, nil
}

// valuesSchema caps the accepted sequence length at MAX_VALUES since sorting is quadratic.
func (s *Server) valuesSchema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[ValuesInput](nil)
	if err != nil {
		return nil, fmt.Errorf("building values schema: %w", err)
	}
	if prop, ok := schema.Properties["values"]; ok {
		maxItems := s.cfg.MaxValues
		prop.MaxItems = &maxItems
	}
	return schema, nil
}
