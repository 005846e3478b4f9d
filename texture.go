package gfx

// TextureID is an opaque handle to a backend texture.
//
// No texture registry exists yet: every adapter's LoadTexture returns
// the constant handle below without touching the file system, and
// UnloadTexture and DrawTexture accept any handle and do nothing. The
// type exists so call sites keep compiling once real textures arrive.
type TextureID int

// PlaceholderTexture is the handle every adapter returns from
// LoadTexture until the texture registry is implemented.
const PlaceholderTexture TextureID = 1
