// Package domain defines the core business entities for Harvest.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: The canonical ingestion output (content + metadata)
//   - RawRecord: A tagged source record (file block, chat message, VK message)
//   - PeerID: An integer VK conversation handle
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
