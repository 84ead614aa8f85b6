// Package openai implements ai.Embedder for OpenAI-compatible embedding
// APIs, including the hosted OpenAI service and local servers such as
// Ollama, LocalAI and vLLM. The credential comes from the validated
// ai.Config; it is never read from ambient process state here.
package openai
