package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Utilidad de operador: hace login contra la API y persiste el par
// {access, refresh} en un archivo local para usarlo con curl u otras
// herramientas. No forma parte del contrato de la API.
//
//	token -url http://localhost:8080 -user admin -pass secreto -out tokens.json

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
	TenantID string `json:"tenant_id,omitempty"`
}

type loginEnvelope struct {
	Status string `json:"status"`
	Data   struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	} `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "URL base de la API")
	user := flag.String("user", "", "username")
	pass := flag.String("pass", "", "password")
	tenant := flag.String("tenant", "", "tenant_id opcional")
	out := flag.String("out", "tokens.json", "archivo de salida")
	flag.Parse()

	if *user == "" || *pass == "" {
		fmt.Fprintln(os.Stderr, "uso: token -user <username> -pass <password> [-tenant <id>] [-url <base>] [-out <archivo>]")
		os.Exit(2)
	}

	body, err := json.Marshal(loginPayload{Username: *user, Password: *pass, TenantID: *tenant})
	if err != nil {
		fatal("serializar payload: %v", err)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Post(*baseURL+"/api/core/auth/login/", "application/json", bytes.NewReader(body))
	if err != nil {
		fatal("login: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		fatal("leer respuesta: %v", err)
	}

	var envelope loginEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		fatal("respuesta no es JSON (%d): %s", resp.StatusCode, raw)
	}
	if resp.StatusCode != http.StatusOK || envelope.Status != "ok" {
		if envelope.Error != nil {
			fatal("login rechazado (%d): %s %s", resp.StatusCode, envelope.Error.Code, envelope.Error.Message)
		}
		fatal("login rechazado (%d): %s", resp.StatusCode, raw)
	}

	pair, err := json.MarshalIndent(map[string]string{
		"access":  envelope.Data.Access,
		"refresh": envelope.Data.Refresh,
	}, "", "  ")
	if err != nil {
		fatal("serializar tokens: %v", err)
	}
	// 0600: el refresh token es una credencial de larga vida.
	if err := os.WriteFile(*out, append(pair, '\n'), 0o600); err != nil {
		fatal("escribir %s: %v", *out, err)
	}
	fmt.Printf("tokens guardados en %s\n", *out)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
