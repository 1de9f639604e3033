/*
Package session keeps a Selection per session for hosts that have no
address bar to carry it (CLI, MCP).

The Manager serialises read-modify-write cycles per session id with a local
refcounted mutex and, optionally, a distributed lock shared by replicas.
*/
package session
