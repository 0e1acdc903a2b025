package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/playperu/courtboard/internal/court"
	"github.com/playperu/courtboard/internal/customize"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Path parameters, declared so the document lists them.
type boardPath struct {
	BoardID string `path:"boardID"`
}

type markerPath struct {
	Marker string `path:"marker"`
}

type historyPath struct {
	boardPath
	Index int `path:"index"`
}

type dragInput struct {
	boardPath
	DragRequest
}

type modeInput struct {
	boardPath
	ModeRequest
}

type resizeInput struct {
	boardPath
	ResizeRequest
}

type patchInput struct {
	markerPath
	customize.Patch
}

type operation struct {
	method      string
	path        string
	summary     string
	description string
	req         any
	resps       []response
}

type response struct {
	status      int
	body        any
	contentType string
}

func respOK(body any) response {
	return response{status: http.StatusOK, body: body}
}

func respError(status int) response {
	return response{status: status, body: ErrorResponse{}}
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Courtboard API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Drag players and the shuttle around a badminton court with undo/redo and movement trails.")

	const board = "/api/boards/{boardID}"
	notFound := respError(http.StatusNotFound)
	badRequest := respError(http.StatusBadRequest)

	ops := []operation{
		{http.MethodGet, "/healthz", "Health check", "Returns the health status of backend dependencies.", nil,
			[]response{respOK(map[string]any{}), {status: http.StatusServiceUnavailable, body: map[string]any{}}}},

		{http.MethodPost, "/api/boards", "Create board", "Starts a singles board sized directly or fitted to the screen.", CreateBoardRequest{},
			[]response{{status: http.StatusCreated, body: BoardState{}}, badRequest}},
		{http.MethodGet, board, "Get board", "Current board state. Supports If-None-Match for polling.", boardPath{},
			[]response{respOK(BoardState{}), {status: http.StatusNotModified}, notFound}},
		{http.MethodGet, board + "/trails", "Get trails", "Trails to draw from ghost to current position.", boardPath{},
			[]response{respOK([]court.Trail{}), notFound}},
		{http.MethodGet, board + "/history/{index}", "Get history entry", "One committed snapshot, counting from the oldest. Undone entries stay readable until the next commit.", historyPath{},
			[]response{respOK(HistoryEntry{}), badRequest, notFound}},
		{http.MethodGet, board + "/events", "SSE event stream", "Server-Sent Events stream of board state changes.", boardPath{},
			[]response{{status: http.StatusOK, contentType: "text/event-stream"}, notFound}},
		{http.MethodGet, board + "/ws", "Drag websocket", "Upgrades to a websocket carrying start/move/end/cancel drag messages.", boardPath{},
			[]response{{status: http.StatusSwitchingProtocols, contentType: "application/json"}, notFound}},

		{http.MethodPost, board + "/drag/start", "Start drag", "Opens a drag; the given position becomes the marker's ghost.", dragInput{},
			[]response{respOK(CommandResponse{}), badRequest, respError(http.StatusConflict), notFound}},
		{http.MethodPost, board + "/drag/move", "Move drag", "Updates the dragged marker's live position. Orphan moves are absorbed.", dragInput{},
			[]response{respOK(CommandResponse{}), badRequest, notFound}},
		{http.MethodPost, board + "/drag/end", "End drag", "Commits the open drag as one history entry. Orphan ends are absorbed.", boardPath{},
			[]response{respOK(CommandResponse{}), notFound}},
		{http.MethodPost, board + "/drag/cancel", "Cancel drag", "Abandons the open drag without touching history.", boardPath{},
			[]response{respOK(CommandResponse{}), notFound}},

		{http.MethodPost, board + "/undo", "Undo", "Steps back one history entry.", boardPath{}, []response{respOK(CommandResponse{}), notFound}},
		{http.MethodPost, board + "/redo", "Redo", "Steps forward one history entry.", boardPath{}, []response{respOK(CommandResponse{}), notFound}},
		{http.MethodPost, board + "/reset", "Reset", "Restores the default layout and clears history.", boardPath{}, []response{respOK(CommandResponse{}), notFound}},
		{http.MethodPost, board + "/mode", "Set mode", "Switches singles/doubles, restoring the default layout and clearing history.", modeInput{},
			[]response{respOK(CommandResponse{}), badRequest, notFound}},
		{http.MethodPost, board + "/trails/players", "Toggle player trails", "Flips whether player trails stay visible after motion.", boardPath{},
			[]response{respOK(CommandResponse{}), notFound}},
		{http.MethodPost, board + "/trails/shuttle", "Toggle shuttle trail", "Flips whether the shuttle trail stays visible after motion.", boardPath{},
			[]response{respOK(CommandResponse{}), notFound}},
		{http.MethodPut, board + "/court", "Resize court", "Sets the court size used by the next reset or mode switch.", resizeInput{},
			[]response{respOK(CommandResponse{}), badRequest, notFound}},

		{http.MethodGet, "/api/customizations", "List customizations", "Marker appearance for every marker.", nil,
			[]response{respOK([]MarkerCustomization{})}},
		{http.MethodPost, "/api/customizations/reset", "Reset customizations", "Restores every marker's default appearance.", nil,
			[]response{respOK([]MarkerCustomization{})}},
		{http.MethodGet, "/api/customizations/selected", "Selected marker", "Marker selected in the settings panel.", nil,
			[]response{respOK(SelectResponse{})}},
		{http.MethodPut, "/api/customizations/selected", "Select marker", "Selects a marker in the settings panel.", SelectRequest{},
			[]response{respOK(SelectResponse{}), badRequest}},
		{http.MethodGet, "/api/customizations/{marker}", "Get customization", "Appearance of one marker.", markerPath{},
			[]response{respOK(MarkerCustomization{}), notFound}},
		{http.MethodPatch, "/api/customizations/{marker}", "Update customization", "Merges a partial update into one marker's appearance.", patchInput{},
			[]response{respOK(MarkerCustomization{}), badRequest, respError(http.StatusConflict), notFound}},
	}

	for _, op := range ops {
		oc, err := r.NewOperationContext(op.method, op.path)
		if err != nil {
			continue
		}
		oc.SetSummary(op.summary)
		oc.SetDescription(op.description)
		if op.req != nil {
			oc.AddReqStructure(op.req)
		}
		for _, resp := range op.resps {
			opts := []openapi.ContentOption{openapi.WithHTTPStatus(resp.status)}
			if resp.contentType != "" {
				opts = append(opts, openapi.WithContentType(resp.contentType))
			}
			oc.AddRespStructure(resp.body, opts...)
		}
		_ = r.AddOperation(oc)
	}

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
