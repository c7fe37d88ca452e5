package resp

import (
	"encoding/json"
	"log"
	"net/http"
)

// WriteJSONResponse writes v as a JSON body with the given status code.
func WriteJSONResponse(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("failed to encode response:", err)
	}
}
