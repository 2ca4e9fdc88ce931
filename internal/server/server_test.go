package server

import (
	"encoding/json"
	"testing"
)

func TestNew(t *testing.T) {
	s := New()
	if s == nil {
		t.Fatal("New() returned nil")
	}
	if s.cache == nil {
		t.Fatal("New() did not initialize cache")
	}
}

func TestMCPRequest_Unmarshal(t *testing.T) {
	tests := []struct {
		name       string
		json       string
		wantID     interface{}
		wantMethod string
	}{
		{
			"string id",
			`{"jsonrpc":"2.0","id":"test-1","method":"tools/list"}`,
			"test-1",
			"tools/list",
		},
		{
			"numeric id",
			`{"jsonrpc":"2.0","id":42,"method":"ping"}`,
			float64(42),
			"ping",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req MCPRequest
			if err := json.Unmarshal([]byte(tt.json), &req); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if req.ID != tt.wantID {
				t.Errorf("ID = %v, want %v", req.ID, tt.wantID)
			}
			if req.Method != tt.wantMethod {
				t.Errorf("Method = %q, want %q", req.Method, tt.wantMethod)
			}
		})
	}
}

func TestHandleRequest_Initialize(t *testing.T) {
	s := New()
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "initialize"})
	if resp == nil {
		t.Fatal("initialize returned nil response")
	}
	if resp.Error != nil {
		t.Fatalf("initialize returned error: %v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("result type = %T, want map", resp.Result)
	}
	if result["protocolVersion"] != "2024-11-05" {
		t.Errorf("protocolVersion = %v", result["protocolVersion"])
	}
	info, ok := result["serverInfo"].(map[string]interface{})
	if !ok || info["name"] != "palettepal-mcp" {
		t.Errorf("serverInfo = %v", result["serverInfo"])
	}
}

func TestHandleRequest_Ping(t *testing.T) {
	s := New()
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 7, Method: "ping"})
	if resp == nil || resp.Error != nil {
		t.Fatalf("ping response = %+v", resp)
	}
}

func TestHandleRequest_NotificationHasNoResponse(t *testing.T) {
	s := New()
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", Method: "notifications/initialized"})
	if resp != nil {
		t.Errorf("notification got response: %+v", resp)
	}
}

func TestHandleRequest_UnknownMethod(t *testing.T) {
	s := New()
	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "bogus/method"})
	if resp == nil || resp.Error == nil {
		t.Fatal("unknown method should return an error response")
	}
	if resp.Error.Code != -32601 {
		t.Errorf("error code = %d, want -32601", resp.Error.Code)
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := New()
	resp := s.handleToolsCall(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  json.RawMessage(`not json`),
	})
	if resp == nil || resp.Error == nil {
		t.Fatal("invalid params should return an error response")
	}
	if resp.Error.Code != -32602 {
		t.Errorf("error code = %d, want -32602", resp.Error.Code)
	}
}

func TestHandleToolsCall_ExecutionFailure(t *testing.T) {
	s := New()
	params, _ := json.Marshal(ToolCallParams{
		Name:      "color_convert",
		Arguments: json.RawMessage(`{"hex":"#zzzzzz"}`),
	})
	resp := s.handleToolsCall(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/call", Params: params})
	if resp == nil || resp.Error == nil {
		t.Fatal("bad hex should return an error response")
	}
	if resp.Error.Code != -32000 {
		t.Errorf("error code = %d, want -32000", resp.Error.Code)
	}
}
