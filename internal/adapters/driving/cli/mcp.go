package cli

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hyperless/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol integration",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTML tools over MCP",
	Long: `Serve hyperless to MCP clients.

Tools: render_html, strip_tags, excerpt, list_attributes and, with an
index, index_path. The index is also readable as hyperless://documents.

Without --port the server speaks JSON-RPC on stdin and stdout, which is
what most clients expect:

  {"mcpServers": {"hyperless": {"command": "hyperless", "args": ["mcp", "serve"]}}}

With --port it serves streamable HTTP instead:

  hyperless mcp serve --port 8080 --host 0.0.0.0`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "Serve HTTP on this port instead of stdio")
	mcpServeCmd.Flags().String("host", "localhost", "Interface to bind when serving HTTP")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	if err := requireMarkup(); err != nil {
		return err
	}
	port, _ := cmd.Flags().GetInt("port")
	host, _ := cmd.Flags().GetString("host")
	if port < 0 || port > 65535 {
		return fmt.Errorf("invalid port %d", port)
	}

	server, err := mcp.NewServer(&mcp.Ports{Markup: markupService, Document: documentService})
	if err != nil {
		return err
	}

	ctx, stop := notifyContext(cmd)
	defer stop()

	if port == 0 {
		return server.Run(ctx)
	}

	ln, err := net.Listen("tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://%s\n", ln.Addr())
	return server.Serve(ctx, ln)
}
