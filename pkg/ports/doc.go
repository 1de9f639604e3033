/*
Package ports defines the driven ports (interfaces) for the wilayah engine.

These interfaces decouple the selection core from external implementations, allowing
the engine to work with various dataset sources, session backends and address bars.

# Key Interfaces

  - DatasetLoader: Responsible for fetching and parsing the region Dataset (file, HTTP, memory).
  - ParamStore: The key-value read/write capability behind the query string.
  - SelectionStore: Responsible for persisting a Selection per session (memory, Redis).
  - DistributedLocker: Provides distributed locking for handling concurrent session access.
*/
package ports
