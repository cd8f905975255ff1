package types

// Client -> Server
// StartRun: {}
//   Enters the Playing phase: fresh rival board seeded from score 0,
//   window reset, live updates armed.
//
// Progress:
//   score: number // running distance, sent while the run is active
//
// EndRun:
//   score: number // final distance for the run

// Server -> Client
// BoardUpdate:
//   version: number
//   view:
//     phase: "menu" | "playing" | "game_over"
//     score: number
//     high_score: number
//     entries: [{ name, score, live }] // <=4 while playing, <=10 on game over
//     rank: number          // game over only; 0 means absent
//     next_tier: Tier       // game over only; omitted once all unlocked
//     next_remaining: number
//     unlocked_tier: Tier   // game over only; tier crossed by this run
//
// Tier:
//   id: string
//   display_name: string
//   primary_color: string
//   accent_color: string
//   unlock_score: number
//
// Error:
//   error: string
