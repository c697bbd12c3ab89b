package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/urfave/cli"

	"v3d"
	"v3d/internal/scene"
)

const (
	width  = 800
	height = 600
	title  = "v3d"
)

var (
	axesColor   = mgl32.Vec4{0.5, 0.5, 0.5, 1}
	spinColor   = mgl32.Vec4{0.3, 0.5, 1, 1}
	vectorColor = mgl32.Vec4{1, 1, 0, 1}
)

func main() {
	runtime.LockOSThread()

	app := cli.NewApp()
	app.Name = "v3dview"
	app.Usage = "watch a vector rotate about an axis"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "vector", Value: "1,0,0", Usage: "vector to rotate, x,y,z"},
		cli.StringFlag{Name: "axis", Value: "0,1,0", Usage: "rotation axis, x,y,z"},
		cli.Float64Flag{Name: "speed", Value: 90, Usage: "degrees per second"},
	}
	app.Action = func(c *cli.Context) error {
		v, err := v3d.ParsePoint(c.String("vector"))
		if err != nil {
			return err
		}
		axis, err := v3d.ParsePoint(c.String("axis"))
		if err != nil {
			return err
		}
		s, err := scene.New(v3d.NewVector(v), v3d.NewVector(axis), c.Float64("speed"))
		if err != nil {
			return fmt.Errorf("axis %v: %w", axis, err)
		}
		return run(s)
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatalln(err)
	}
}

func run(s *scene.Scene) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		panic(err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		panic(err)
	}
	log.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))

	prog, err := newLineProgram()
	if err != nil {
		return err
	}
	gl.UseProgram(prog.id)

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	verts := s.Vertices()
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.DYNAMIC_DRAW)

	gl.EnableVertexAttribArray(prog.vert)
	gl.VertexAttribPointer(prog.vert, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.1, 1.0)

	mvp := scene.MVP(float32(width) / float32(height))
	gl.UniformMatrix4fv(prog.mvp, 1, false, &mvp[0])

	lastFrameTime := glfw.GetTime()
	lastTitleTime := lastFrameTime

	for !window.ShouldClose() {
		now := glfw.GetTime()
		s.Advance(now - lastFrameTime)
		lastFrameTime = now

		if now-lastTitleTime >= 0.25 {
			window.SetTitle(fmt.Sprintf("%s | %v | %.0f°", title, s.Current(), s.Angle()))
			lastTitleTime = now
		}

		verts = s.Vertices()
		gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(verts))

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		gl.UseProgram(prog.id)
		gl.BindVertexArray(vao)

		drawLines(prog, axesColor, scene.AxesFirst, scene.AxesCount)
		drawLines(prog, spinColor, scene.SpinFirst, scene.SpinCount)
		drawLines(prog, vectorColor, scene.VectorFirst, scene.VectorCount)

		window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

func drawLines(prog *lineProgram, col mgl32.Vec4, first, count int32) {
	gl.Uniform4fv(prog.col, 1, &col[0])
	gl.DrawArrays(gl.LINES, first, count)
}
