package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/napolitain/solver-er/internal/milp"
	"github.com/napolitain/solver-er/internal/milp/glpk"
	"github.com/napolitain/solver-er/internal/models"
	"github.com/napolitain/solver-er/internal/solver/hospital"
)

// session holds one in-memory game. The mutex serializes hourly calls:
// at most one transition+solve is in flight against the state.
type session struct {
	mu     sync.Mutex
	state  *models.GameState
	solver milp.Solver
}

func newSession(solver milp.Solver) *session {
	return &session{
		state:  models.NewGameState(),
		solver: solver,
	}
}

type optimizeRequest struct {
	models.HourInput
	QualityWeight *float64 `json:"quality_weight"`
	FlowReward    *float64 `json:"flow_reward"`
}

func newRouter(s *session) *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	r.GET("/api/v1/state", func(c *gin.Context) {
		s.mu.Lock()
		snapshot := s.state.Clone()
		s.mu.Unlock()
		c.JSON(http.StatusOK, snapshot)
	})

	r.POST("/api/v1/optimize", func(c *gin.Context) {
		var req optimizeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		opts := hospital.DefaultOptions()
		if req.QualityWeight != nil {
			opts.QualityWeight = *req.QualityWeight
		}
		if req.FlowReward != nil {
			opts.FlowReward = *req.FlowReward
		}

		s.mu.Lock()
		report, err := hospital.OptimizeHour(s.solver, s.state, &req.HourInput, opts)
		s.mu.Unlock()

		if err != nil {
			var solveErr *hospital.SolveError
			if errors.As(err, &solveErr) {
				c.JSON(http.StatusInternalServerError, gin.H{
					"error":  solveErr.Error(),
					"status": solveErr.Status.String(),
					"hour":   solveErr.Hour,
				})
				return
			}
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, report)
	})

	r.POST("/api/v1/reset", func(c *gin.Context) {
		s.mu.Lock()
		s.state = models.NewGameState()
		snapshot := s.state.Clone()
		s.mu.Unlock()
		c.JSON(http.StatusOK, snapshot)
	})

	return r
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	sess := newSession(glpk.New())
	r := newRouter(sess)

	log.Printf("ER optimizer listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to serve: %v", err)
	}
}
