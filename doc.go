// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package globj manages the lifetime and diagnostics of OpenGL objects:
// vertex arrays, buffers, textures, framebuffers, shaders and linked
// programs.
//
// # Overview
//
// Every GPU-side object is created, labeled, bound and destroyed exactly
// once, tied to an owning wrapper value. Wrappers issue their own creation
// and configuration calls at construction and release the object in
// Destroy. Compile, link and driver diagnostics are surfaced through a
// uniform channel: the debug message router.
//
// All GL traffic goes through the [API] interface, so the same wrappers run
// against the real driver (backend/opengl) or against the in-memory fake
// (gltest) in tests.
//
// # Quick Start
//
//	api, err := backend.Default()
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := globj.InstallDebug(api, nil); err != nil {
//		log.Fatal(err)
//	}
//
//	vbo := globj.NewBuffer(api, globj.ArrayBuffer, "quad vertices")
//	defer vbo.Destroy()
//	if err := vbo.SetData(verts, globj.StaticDraw); err != nil {
//		log.Fatal(err)
//	}
//
//	vs, err := globj.CompileShader(api, globj.VertexShader, "quad vs", vsSrc)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer vs.Destroy()
//	fs, err := globj.CompileShader(api, globj.FragmentShader, "quad fs", fsSrc)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer fs.Destroy()
//
//	prog, err := globj.NewProgram(api, "quad", vs, fs)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer prog.Destroy()
//	prog.Use()
//
// # Threading
//
// A GL context is current to exactly one goroutine at a time and all
// wrapper operations must be invoked from that goroutine. The package
// performs no locking. The debug callback may be invoked synchronously and
// reentrantly from inside any wrapped call on the same goroutine; it must
// not call back into the API.
//
// # Ownership
//
// Each wrapper exclusively owns one object identifier, carried in a
// [Handle] token. No two wrappers may reference the same identifier, and
// the host must not tear the context down while wrappers still hold live
// handles. Destroy is idempotent: the first call releases the object, later
// calls are no-ops.
package globj
