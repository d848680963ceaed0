package web

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/ehrlich-b/cube/internal/cube"
	"github.com/ehrlich-b/cube/internal/facelet"
	"github.com/ehrlich-b/cube/internal/kociemba"
	"github.com/google/uuid"
)

type SolveRequest struct {
	Scramble string `json:"scramble"`
	MaxDepth int    `json:"maxDepth"`
}

type SolveResponse struct {
	Solution string `json:"solution"`
	Moves    int    `json:"moves"`
	Time     string `json:"time"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code,omitempty"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	html := `<!DOCTYPE html>
<html>
<head>
    <title>Cube Solver</title>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; }
        .container { background: #f5f5f5; padding: 20px; border-radius: 8px; }
        input, button { padding: 10px; margin: 5px; }
        button { background: #007cba; color: white; border: none; border-radius: 4px; cursor: pointer; }
        button:hover { background: #005a8b; }
        .result { background: white; padding: 15px; margin-top: 20px; border-radius: 4px; }
    </style>
</head>
<body>
    <h1>Cube Solver</h1>
    <div class="container">
        <h2>Solve a Scrambled 3x3x3</h2>
        <form id="solveForm">
            <div>
                <label>Scramble:</label><br>
                <input type="text" id="scramble" placeholder="R U R' U' F R F'" style="width: 300px;">
            </div>
            <button type="submit">Solve</button>
        </form>
        <div id="result" class="result" style="display: none;"></div>
    </div>

    <script>
        document.getElementById('solveForm').addEventListener('submit', async (e) => {
            e.preventDefault();
            const scramble = document.getElementById('scramble').value;

            try {
                const response = await fetch('/api/solve', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify({ scramble })
                });

                const result = await response.json();
                const box = document.getElementById('result');
                if (!response.ok) {
                    box.innerHTML = '<p style="color: red;">Error ' + (result.code || '') + ': ' + result.error + '</p>';
                } else {
                    box.innerHTML =
                        '<h3>Solution:</h3><p>' + result.solution + '</p>' +
                        '<p><strong>Moves:</strong> ' + result.moves + '</p>' +
                        '<p><strong>Time:</strong> ' + result.time + '</p>';
                }
                box.style.display = 'block';
            } catch (error) {
                const box = document.getElementById('result');
                box.innerHTML = '<p style="color: red;">Error: ' + error.message + '</p>';
                box.style.display = 'block';
            }
        });
    </script>
</body>
</html>`

	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, html)
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON", 0)
		return
	}

	c := cube.NewCube(3)
	moves, err := cube.ParseScramble(req.Scramble)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("error parsing scramble: %v", err), 0)
		return
	}
	c.ApplyMoves(moves)

	kociemba.Setup()

	faceletStr, err := c.ToFaceletString()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error(), 0)
		return
	}

	cubieCube, err := facelet.ToCube(faceletStr)
	if err != nil {
		code := 0
		if ce, ok := err.(interface{ Code() int }); ok {
			code = ce.Code()
		}
		writeError(w, http.StatusBadRequest, err.Error(), code)
		return
	}

	maxDepth := req.MaxDepth
	if maxDepth <= 0 {
		maxDepth = 24
	}

	start := time.Now()
	solution, err := kociemba.Solve(cubieCube, maxDepth, 10*time.Second, false)
	duration := time.Since(start)
	if err != nil {
		code := 0
		if ce, ok := err.(interface{ Code() int }); ok {
			code = ce.Code()
		}
		log.Printf("solve[%s]: failed after %v: %v", requestID, duration, err)
		writeError(w, http.StatusInternalServerError, err.Error(), code)
		return
	}
	log.Printf("solve[%s]: %q -> %q in %v", requestID, req.Scramble, solution, duration)

	solutionMoves, _ := cube.ParseScramble(solution)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SolveResponse{
		Solution: solution,
		Moves:    len(solutionMoves),
		Time:     duration.String(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func writeError(w http.ResponseWriter, status int, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message, Code: code})
}
