package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iulianpascalau/polly-api-client/services/mockapi/storage"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

const (
	defaultSkip  = "0"
	defaultLimit = "10"
)

var log = logger.GetOrCreate("api")

type server struct {
	router     *gin.Engine
	httpServer *http.Server
	storage    Storage
	listenAddr string
	wg         sync.WaitGroup
}

// registerPayload represents the incoming JSON body on /register
type registerPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ArgsWebServer defines the web server arguments
type ArgsWebServer struct {
	ListenAddress string
	Storage       Storage
}

// NewServer initializes the Gin engine and mounts all routes
func NewServer(args ArgsWebServer) (*server, error) {
	if check.IfNil(args.Storage) {
		return nil, errors.New("storage is required")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(gin.Recovery())

	s := &server{
		router:     router,
		storage:    args.Storage,
		listenAddr: args.ListenAddress,
	}

	s.setupRoutes()
	return s, nil
}

func (s *server) setupRoutes() {
	s.router.GET("/polls", s.handleGetPolls)
	s.router.POST("/register", s.handleRegister)
}

// Start listens and serves connections
func (s *server) Start() {
	s.httpServer = &http.Server{
		Addr:    s.listenAddr,
		Handler: s.router,
	}

	ln, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		log.Error("failed to listen", "error", err)
		return
	}
	s.listenAddr = ln.Addr().String()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		log.Info("starting HTTP server", "address", s.listenAddr)

		err := s.httpServer.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "error", err)
		}
	}()
}

// Address returns the actual listen address
func (s *server) Address() string {
	return s.listenAddr
}

// Close gracefully stops the server
func (s *server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return err
		}
	}
	s.wg.Wait()
	return s.storage.Close()
}

// --- Handlers ---

func (s *server) handleGetPolls(c *gin.Context) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", defaultSkip))
	if err != nil || skip < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid skip parameter"})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", defaultLimit))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid limit parameter"})
		return
	}

	polls := s.storage.ListPolls(skip, limit)

	log.Debug("served polls page", "skip", skip, "limit", limit, "returned", len(polls))

	// the success body is a bare JSON array of polls
	c.JSON(http.StatusOK, polls)
}

func (s *server) handleRegister(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid payload"})
		return
	}

	if len(payload.Username) == 0 || len(payload.Password) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "username and password are required"})
		return
	}

	user, err := s.storage.RegisterUser(payload.Username)
	if err != nil {
		if storage.IsUsernameTaken(err) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Username already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	log.Debug("registered user", "username", user.Username, "id", user.ID)

	c.JSON(http.StatusOK, user)
}

// IsInterfaceNil returns true if the value under the interface is nil
func (s *server) IsInterfaceNil() bool {
	return s == nil
}
