package main

import (
	"context"
	"encoding/json"
	"io"
	"maps"
	"os"
	"os/signal"
	"slices"

	"github.com/scott-cotton/cli"
	"go.lsp.dev/jsonrpc2"

	"github.com/signadot/lintcfg"
	"github.com/signadot/lintcfg/debug"
	"github.com/signadot/lintcfg/format"
)

func serveMain(cfg *ServeConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Serve.Parse(cc, args); err != nil {
		return err
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(&stdioReadWriteCloser{
		read:  os.Stdin,
		write: os.Stdout,
	}))
	conn.Go(ctx, handle)
	select {
	case <-conn.Done():
		return conn.Err()
	case <-ctx.Done():
		return conn.Close()
	}
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}

type convertParams struct {
	Text string        `json:"text"`
	From format.Format `json:"from"`
	To   format.Format `json:"to"`
}

type convertResult struct {
	Text string `json:"text"`
}

type installLegacyParams struct {
	PackageJSON string              `json:"packageJson"`
	Config      string              `json:"config"`
	Format      format.LegacyFormat `json:"format"`
	Plugins     []string            `json:"plugins"`
}

type installFlatParams struct {
	Config  string   `json:"config"`
	Plugins []string `json:"plugins"`
}

type pluginSummary struct {
	Name            string   `json:"name"`
	Legacy          bool     `json:"legacy"`
	Flat            bool     `json:"flat"`
	DevDependencies []string `json:"devDependencies,omitempty"`
}

func handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	if debug.Install() {
		debug.Logf("rpc %s %s\n", req.Method(), req.Params())
	}
	switch req.Method() {
	case "convert":
		var p convertParams
		if err := decodeParams(req, &p); err != nil {
			return reply(ctx, nil, err)
		}
		return reply(ctx, convertResult{Text: lintcfg.Convert(p.Text, p.From, p.To)}, nil)
	case "installLegacy":
		var p installLegacyParams
		if err := decodeParams(req, &p); err != nil {
			return reply(ctx, nil, err)
		}
		plugins, err := lintcfg.Plugins(p.Plugins...)
		if err != nil {
			return reply(ctx, lintcfg.LegacyResult{Message: err.Error()}, nil)
		}
		return reply(ctx, lintcfg.InstallLegacy(p.PackageJSON, p.Config, p.Format, plugins), nil)
	case "installFlat":
		var p installFlatParams
		if err := decodeParams(req, &p); err != nil {
			return reply(ctx, nil, err)
		}
		plugins, err := lintcfg.Plugins(p.Plugins...)
		if err != nil {
			return reply(ctx, lintcfg.FlatResult{Message: err.Error()}, nil)
		}
		return reply(ctx, lintcfg.InstallFlat(p.Config, plugins), nil)
	case "plugins":
		ps, err := lintcfg.Plugins()
		if err != nil {
			return reply(ctx, nil, jsonrpc2.Errorf(jsonrpc2.InternalError, "%v", err))
		}
		res := make([]pluginSummary, 0, len(ps))
		for _, p := range ps {
			res = append(res, pluginSummary{
				Name:            p.Name,
				Legacy:          p.Legacy != nil,
				Flat:            p.Flat != nil,
				DevDependencies: slices.Sorted(maps.Keys(p.DevDependencies)),
			})
		}
		return reply(ctx, res, nil)
	default:
		return reply(ctx, nil, jsonrpc2.Errorf(jsonrpc2.MethodNotFound, "method not found: %s", req.Method()))
	}
}

func decodeParams(req jsonrpc2.Request, v any) error {
	if err := json.Unmarshal(req.Params(), v); err != nil {
		return jsonrpc2.Errorf(jsonrpc2.InvalidParams, "invalid params for %s: %v", req.Method(), err)
	}
	return nil
}
