package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/iulianpascalau/polly-api-client/commonGo"
	"github.com/iulianpascalau/polly-api-client/services/client/common"
	"github.com/iulianpascalau/polly-api-client/services/client/config"
	"github.com/iulianpascalau/polly-api-client/services/client/factory"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/urfave/cli"
)

const (
	defaultLogsPath      = "logs"
	logFilePrefix        = "client"
	logFileLifeSpanInSec = 86400 // 24h
	logFileLifeSpanInMB  = 1024  // 1GB
	configFile           = "./config.toml"
	envFile              = "./.env"
	envUsernameKey       = "POLLY_USERNAME"
	envPasswordKey       = "POLLY_PASSWORD"
)

// appVersion should be populated at build time using ldflags
// Usage examples:
// Linux/macOS:
//
//	go build -v -ldflags="-X main.appVersion=$(git describe --all | cut -c7-32)
var appVersion = "undefined"
var fileLogging commonGo.FileLoggingHandler

var (
	clientHelpTemplate = `NAME:
   {{.Name}} - {{.Usage}}
USAGE:
   {{.HelpName}} {{if .VisibleFlags}}[global options]{{end}}
   {{if len .Authors}}
AUTHOR:
   {{range .Authors}}{{ . }}{{end}}
   {{end}}{{if .Commands}}
GLOBAL OPTIONS:
   {{range .VisibleFlags}}{{.}}
   {{end}}
VERSION:
   {{.Version}}
   {{end}}
`

	log = logger.GetOrCreate("client")

	// logLevel defines the logger level
	logLevel = cli.StringFlag{
		Name: "log-level",
		Usage: "This flag specifies the logger `level(s)`. It can contain multiple comma-separated value. For example" +
			", if set to *:INFO the logs for all packages will have the INFO level. However, if set to *:INFO,fetcher:DEBUG" +
			" the logs for all packages will have the INFO level, excepting the fetcher package which will receive a DEBUG" +
			" log level.",
		Value: "*:" + logger.LogInfo.String(),
	}
	// logSaveFile is used when the log output needs to be logged in a file
	logSaveFile = cli.BoolFlag{
		Name:  "log-save",
		Usage: "Boolean option for enabling log saving. If set, it will automatically save all the logs into a file.",
	}
	// workingDirectory defines a flag for the path for the working directory.
	workingDirectory = cli.StringFlag{
		Name:  "working-directory",
		Usage: "This flag specifies the `directory` where the client will store logs.",
		Value: "",
	}

	envFileContents = map[string]string{
		envUsernameKey: "",
		envPasswordKey: "",
	}
)

func main() {
	app := cli.NewApp()
	cli.AppHelpTemplate = clientHelpTemplate
	app.Name = "Polly API client"
	app.Version = fmt.Sprintf("%s/%s/%s-%s", appVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	app.Usage = "Demonstration client for the Polly poll-management API: registers a user, fetches paginated polls and prints a report"
	app.Flags = []cli.Flag{
		logLevel,
		logSaveFile,
		workingDirectory,
	}
	app.Authors = []cli.Author{
		{
			Name:  "Iulian Pascalau",
			Email: "iulian.pascalau@gmail.com",
		},
	}

	app.Action = run

	defer func() {
		if fileLogging != nil {
			_ = fileLogging.Close()
		}
	}()

	err := app.Run(os.Args)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	saveLogFile := ctx.GlobalBool(logSaveFile.Name)
	workingDir := ctx.GlobalString(workingDirectory.Name)

	err := logger.SetLogLevel(ctx.GlobalString(logLevel.Name))
	if err != nil {
		return err
	}

	fileLogging, err = commonGo.AttachFileLogger(log, defaultLogsPath, logFilePrefix, saveLogFile, workingDir)
	if err != nil {
		return err
	}

	if !check.IfNil(fileLogging) {
		timeLogLifeSpan := time.Second * time.Duration(logFileLifeSpanInSec)
		sizeLogLifeSpanInMB := uint64(logFileLifeSpanInMB)
		err = fileLogging.ChangeFileLifeSpan(timeLogLifeSpan, sizeLogLifeSpanInMB)
		if err != nil {
			return err
		}
	}

	log.Info("Starting Polly API client", "version", appVersion, "pid", os.Getpid())

	err = commonGo.ReadEnvFile(envFile, envFileContents)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return err
	}

	components, err := factory.NewComponentsHandler(*cfg)
	if err != nil {
		return err
	}

	// demonstration sequence mirroring the original scripts: register a user
	// (a duplicate is an expected, non-fatal outcome), fetch the first page,
	// then fetch all polls and render the combined report
	appCtx := context.Background()

	username := envFileContents[envUsernameKey]
	password := envFileContents[envPasswordKey]

	user, err := components.GetRegistrar().Register(appCtx, username, password)
	var apiErr *common.APIError
	switch {
	case err == nil:
		log.Info("user registered", "username", user.Username, "id", user.ID)
	case errors.As(err, &apiErr):
		log.Warn("registration rejected, continuing", "status code", apiErr.StatusCode, "detail", apiErr.Detail)
	default:
		return err
	}

	firstPage, err := components.GetFetcher().FetchPolls(appCtx, 0, cfg.PageSize)
	if err != nil {
		return err
	}

	log.Info("fetched first page", "returned", firstPage.Pagination.ReturnedCount)
	components.GetRenderer().Render(os.Stdout, firstPage.Polls)

	aggregate, err := components.GetAggregator().FetchAll(appCtx, cfg.MaxPolls)
	if err != nil {
		return err
	}

	log.Info("fetched all polls",
		"total", aggregate.TotalCount,
		"requests", aggregate.PaginationInfo.TotalRequests,
		"page size", aggregate.PaginationInfo.PageSize,
	)
	components.GetRenderer().Render(os.Stdout, aggregate.Polls)

	return nil
}
