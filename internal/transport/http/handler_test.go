package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"quorum/internal/board"
	"quorum/internal/core"
	"quorum/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	svc, err := service.New(nil)
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })
	return NewFiberApp(svc, true)
}

func jsonRequest(method, path string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeGame(t *testing.T, resp *http.Response) GameResponse {
	t.Helper()
	var gr GameResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&gr))
	return gr
}

func createGame(t *testing.T, app *fiber.App) GameResponse {
	t.Helper()
	req := jsonRequest("POST", "/api/v1/games", CreateGameRequest{
		White: core.PlayerConfig{Name: "Alice"},
		Black: core.PlayerConfig{Name: "Bob"},
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return decodeGame(t, resp)
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "healthy")
	assert.Contains(t, string(body), "disabled")
}

func TestCreateGame(t *testing.T) {
	app := newTestApp(t)

	gr := createGame(t, app)
	assert.NotEmpty(t, gr.GameID)
	assert.Equal(t, board.StartingQFEN, gr.QFEN)
	assert.Equal(t, "w", gr.Turn)
	assert.Equal(t, "ongoing", gr.State)
	assert.Empty(t, gr.Plays)
	assert.Equal(t, 0, gr.WinProgress)
	assert.Equal(t, "Alice", gr.Players.White.Name)
	assert.Equal(t, "Bob", gr.Players.Black.Name)
}

func TestCreateGameFromQFEN(t *testing.T) {
	app := newTestApp(t)

	req := jsonRequest("POST", "/api/v1/games", CreateGameRequest{
		QFEN: "8/8/8/8/8/8/8/wb6 b",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	gr := decodeGame(t, resp)
	assert.Equal(t, "8/8/8/8/8/8/8/wb6 b", gr.QFEN)
	assert.Equal(t, "b", gr.Turn)
}

func TestCreateGameInvalidQFEN(t *testing.T) {
	app := newTestApp(t)

	req := jsonRequest("POST", "/api/v1/games", CreateGameRequest{
		QFEN: "not-a-position",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var er ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&er))
	assert.Equal(t, ErrInvalidQFEN, er.Code)
}

func TestGetGameNotFound(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/games/nonexistent", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var er ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&er))
	assert.Equal(t, ErrGameNotFound, er.Code)
}

func TestMakePlay(t *testing.T) {
	app := newTestApp(t)
	gr := createGame(t, app)

	req := jsonRequest("POST", "/api/v1/games/"+gr.GameID+"/plays", PlayRequest{Play: "b1d3"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	after := decodeGame(t, resp)
	assert.Equal(t, "b", after.Turn)
	assert.Equal(t, []string{"b1d3"}, after.Plays)
	require.NotNil(t, after.LastPlay)
	assert.Equal(t, "b1d3", after.LastPlay.Play)
	assert.Equal(t, "w", after.LastPlay.Player)
	assert.Empty(t, after.LastPlay.Suffocated)
	assert.Empty(t, after.LastPlay.Converted)
}

func TestMakePlayIllegal(t *testing.T) {
	app := newTestApp(t)
	gr := createGame(t, app)

	// Black stone can't be moved by White
	req := jsonRequest("POST", "/api/v1/games/"+gr.GameID+"/plays", PlayRequest{Play: "h8f6"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var er ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&er))
	assert.Equal(t, ErrIllegalPlay, er.Code)
	assert.NotEmpty(t, er.Details)

	// Game untouched
	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/games/"+gr.GameID, nil))
	require.NoError(t, err)
	check := decodeGame(t, resp)
	assert.Equal(t, board.StartingQFEN, check.QFEN)
	assert.Empty(t, check.Plays)
}

func TestMakePlayGameOver(t *testing.T) {
	app := newTestApp(t)

	// One legal winning movement away for White
	req := jsonRequest("POST", "/api/v1/games", CreateGameRequest{
		QFEN: "8/8/8/3w1ww1/3ww3/8/8/7b w",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	gr := decodeGame(t, resp)

	req = jsonRequest("POST", "/api/v1/games/"+gr.GameID+"/plays", PlayRequest{Play: "g5e5"})
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	won := decodeGame(t, resp)
	assert.Equal(t, "white_wins", won.State)
	assert.Equal(t, 4, won.WinProgress)

	// Further plays rejected
	req = jsonRequest("POST", "/api/v1/games/"+gr.GameID+"/plays", PlayRequest{Play: "h1g2"})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var er ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&er))
	assert.Equal(t, ErrGameOver, er.Code)
}

func TestGetLegalPlays(t *testing.T) {
	app := newTestApp(t)
	gr := createGame(t, app)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/games/"+gr.GameID+"/plays", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var lr LegalPlaysResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&lr))
	assert.NotEmpty(t, lr.Plays)
	assert.Contains(t, lr.Plays, "b1d3")
	// All home squares occupied at the start, so no placement
	assert.NotContains(t, lr.Plays, "+")
}

func TestGetBoard(t *testing.T) {
	app := newTestApp(t)
	gr := createGame(t, app)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/games/"+gr.GameID+"/board", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var br BoardResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&br))
	assert.Equal(t, board.StartingQFEN, br.QFEN)
	assert.Contains(t, br.Board, "a b c d e f g h")
}

func TestUndoPlay(t *testing.T) {
	app := newTestApp(t)
	gr := createGame(t, app)

	req := jsonRequest("POST", "/api/v1/games/"+gr.GameID+"/plays", PlayRequest{Play: "b1d3"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = jsonRequest("POST", "/api/v1/games/"+gr.GameID+"/undo", UndoRequest{Count: 1})
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	after := decodeGame(t, resp)
	assert.Equal(t, board.StartingQFEN, after.QFEN)
	assert.Empty(t, after.Plays)
	assert.Equal(t, "w", after.Turn)
}

func TestUndoTooMany(t *testing.T) {
	app := newTestApp(t)
	gr := createGame(t, app)

	req := jsonRequest("POST", "/api/v1/games/"+gr.GameID+"/undo", UndoRequest{Count: 3})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDeleteGame(t *testing.T) {
	app := newTestApp(t)
	gr := createGame(t, app)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/v1/games/"+gr.GameID, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/games/"+gr.GameID, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestContentTypeValidation(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("POST", "/api/v1/games", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "text/plain")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnsupportedMediaType, resp.StatusCode)
}

func TestPlayValidation(t *testing.T) {
	app := newTestApp(t)
	gr := createGame(t, app)

	// Empty play fails request validation before reaching the rules
	req := jsonRequest("POST", "/api/v1/games/"+gr.GameID+"/plays", PlayRequest{Play: ""})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var er ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&er))
	assert.Equal(t, ErrInvalidRequest, er.Code)
}
