/*
Package ports defines the driven ports (interfaces) for the USSD engine.

These interfaces decouple the core logic from external implementations,
allowing the engine to work with various session stores and lock providers.

# Key Interfaces

  - SessionStore: Responsible for persisting and loading Session snapshots
    between gateway callbacks.
  - SessionEngine: The driving surface exposed to host shells (HTTP adapter,
    interactive CLI).
  - DistributedLocker: Provides distributed locking for concurrent session
    access across replicas.
*/
package ports
