package web

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/ehrlich-b/cube2x2/internal/board"
	"github.com/ehrlich-b/cube2x2/internal/cube"
	"github.com/google/uuid"
)

type SolveRequest struct {
	Scramble        string `json:"scramble"`
	Start           string `json:"start"`
	FullOrientation bool   `json:"full_orientation"`
	MaxDepth        int    `json:"max_depth"`
}

type SolveResponse struct {
	Type      string `json:"type"`
	RequestID string `json:"request_id"`
	Solution  string `json:"solution"`
	Found     bool   `json:"found"`
	Moves     int    `json:"moves"`
	Time      string `json:"time"`
}

// solveProgressChunk is one line of the newline-delimited JSON stream
// handleSolve writes while the search is running.
type solveProgressChunk struct {
	Type     string  `json:"type"`
	Progress float32 `json:"progress"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	html := `<!DOCTYPE html>
<html>
<head>
    <title>2x2x2 Cube Solver</title>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; }
        .container { background: #f5f5f5; padding: 20px; border-radius: 8px; }
        input, select, button { padding: 10px; margin: 5px; }
        button { background: #007cba; color: white; border: none; border-radius: 4px; cursor: pointer; }
        button:hover { background: #005a8b; }
        .result { background: white; padding: 15px; margin-top: 20px; border-radius: 4px; }
    </style>
</head>
<body>
    <h1>2x2x2 Cube Solver</h1>
    <div class="container">
        <h2>Solve Your Cube</h2>
        <form id="solveForm">
            <div>
                <label>Scramble:</label><br>
                <input type="text" id="scramble" placeholder="R U R' U' F R F'" style="width: 300px;">
            </div>
            <div>
                <label><input type="checkbox" id="fullOrientation"> Require full orientation</label>
            </div>
            <button type="submit">Solve</button>
        </form>
        <div id="result" class="result" style="display: none;"></div>
    </div>

    <script>
        document.getElementById('solveForm').addEventListener('submit', async (e) => {
            e.preventDefault();
            const scramble = document.getElementById('scramble').value;
            const fullOrientation = document.getElementById('fullOrientation').checked;

            const resultBox = document.getElementById('result');
            resultBox.style.display = 'block';
            resultBox.innerHTML = '<p>Solving...</p>';

            try {
                const response = await fetch('/api/solve', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify({ scramble, full_orientation: fullOrientation })
                });

                // The response body is newline-delimited JSON: zero or
                // more {"type":"progress",...} chunks followed by one
                // {"type":"result",...} chunk.
                const reader = response.body.getReader();
                const decoder = new TextDecoder();
                let buffer = '';

                while (true) {
                    const { done, value } = await reader.read();
                    if (done) break;
                    buffer += decoder.decode(value, { stream: true });

                    let newlineIndex;
                    while ((newlineIndex = buffer.indexOf('\n')) >= 0) {
                        const line = buffer.slice(0, newlineIndex);
                        buffer = buffer.slice(newlineIndex + 1);
                        if (!line) continue;

                        const chunk = JSON.parse(line);
                        if (chunk.type === 'progress') {
                            resultBox.innerHTML = '<p>Solving... ' + Math.round(chunk.progress * 100) + '%</p>';
                        } else if (chunk.type === 'result') {
                            resultBox.innerHTML = chunk.found
                                ? '<h3>Solution:</h3><p>' + chunk.solution + '</p>' +
                                  '<p><strong>Moves:</strong> ' + chunk.moves + '</p>' +
                                  '<p><strong>Time:</strong> ' + chunk.time + '</p>'
                                : '<p style="color: red;">No solution found</p>';
                        }
                    }
                }
            } catch (error) {
                resultBox.innerHTML = '<p style="color: red;">Error: ' + error.message + '</p>';
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
		log.Printf("[%s] invalid solve request: %v", requestID, err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	c := cube.Solved()
	if req.Start != "" {
		parsed, err := board.Parse(req.Start)
		if err != nil {
			log.Printf("[%s] invalid start board: %v", requestID, err)
			http.Error(w, fmt.Sprintf("Error parsing start board: %v", err), http.StatusBadRequest)
			return
		}
		c = parsed
	}

	if req.Scramble != "" {
		moves, err := cube.ParseScramble(req.Scramble)
		if err != nil {
			log.Printf("[%s] invalid scramble: %v", requestID, err)
			http.Error(w, fmt.Sprintf("Error parsing scramble: %v", err), http.StatusBadRequest)
			return
		}
		c = cube.ApplyMoves(c, moves)
	}

	mode := cube.ColorOnly
	maxDepth := req.MaxDepth
	if req.FullOrientation {
		mode = cube.FullyOriented
		if maxDepth <= 0 {
			maxDepth = cube.DefaultMaxDepthFullyOriented
		}
	} else if maxDepth <= 0 {
		maxDepth = cube.DefaultMaxDepthColorOnly
	}

	log.Printf("[%s] solving: scramble=%q full_orientation=%v max_depth=%d", requestID, req.Scramble, req.FullOrientation, maxDepth)

	// Everything above can still fail with a normal HTTP status. From
	// here on the response body is a stream of newline-delimited JSON
	// chunks, so headers are committed now; a search that finds nothing
	// is reported in the result chunk with found=false.
	w.Header().Set("Content-Type", "application/x-ndjson")
	flusher, _ := w.(http.Flusher)
	enc := json.NewEncoder(w)

	progress := make(chan float32, 8)
	resultCh := make(chan cube.Solution, 1)

	start := time.Now()
	go func() {
		resultCh <- cube.SolveWithProgress(c, maxDepth, mode, progress)
		close(progress)
	}()

	for p := range progress {
		enc.Encode(solveProgressChunk{Type: "progress", Progress: p})
		if flusher != nil {
			flusher.Flush()
		}
	}

	result := <-resultCh
	elapsed := time.Since(start)

	if !result.Found {
		log.Printf("[%s] no solution found within %d moves", requestID, maxDepth)
	}

	enc.Encode(SolveResponse{
		Type:      "result",
		RequestID: requestID,
		Solution:  cube.FormatMoves(result.Moves),
		Found:     result.Found,
		Moves:     len(result.Moves),
		Time:      elapsed.String(),
	})
	if flusher != nil {
		flusher.Flush()
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
