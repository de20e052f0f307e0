/*
Package blockviz draws AES ciphertext as colored tiles to show how the ECB
and CBC block cipher modes differ.

# Overview

A fixed block of ASCII art is encrypted one line at a time. Each line is
padded with '0' to a multiple of 16 bytes, split into 16-byte blocks and
every block is encrypted with a fixed 128-bit key. The hex ciphertext of a
line becomes one row of tiles: in grayscale mode every byte is one gray
tile, in RGB mode three consecutive bytes form one colored tile.

The ECB grid is drawn on the left and the CBC grid on the right. Identical
plaintext blocks (the long runs of spaces) produce identical ECB tiles, so
the outline of the picture survives encryption. CBC draws a fresh IV for
every block, which hides it.

# Quick Start

	cfg := blockviz.DefaultConfig()
	scene, err := blockviz.NewScene(cfg)
	if err != nil {
	    return err
	}

	renderer, _ := opengl.NewRenderer(cfg.Window.Width, cfg.Window.Height)
	viewer := blockviz.NewViewer(renderer, scene)

	for !window.ShouldClose() {
	    input := adapter.Update()
	    if err := viewer.Frame(input, time.Now()); err != nil {
	        return err
	    }
	    window.SwapBuffers()
	}

# Pipeline

	Pad(line)                  append '0' up to a multiple of 16
	Chunk(padded)              split into 16-byte blocks
	BlockCipher.EncryptECB     32 hex characters per block, deterministic
	BlockCipher.EncryptCBC     32 hex characters per block, random IV
	BlockCipher.EncryptLine    all of the above, keeping 15 hex per block
	HexColors(hex, mode)       one Color per tile
	BuildRow / BuildVisualization
	                           tiles positioned into rows and grids

# Keyboard Reference

	Left / Right     Move the selected row (held)
	Up / Down        Select the previous / next row, wrapping
	A / D            Rotate the selected objects (held)
	J / L            Pan the camera left / right (held)
	I / K            Pan the camera up / down (held)
	Escape           Quit (cmd/blockviz)

# Configuration

Config is loaded from TOML with LoadConfig; see the Config type for the
keys. Every key is optional and falls back to DefaultConfig.
*/
package blockviz
