package main

import (
	"errors"
	"fmt"
	"image/png"
	"log"
	"os"

	"github.com/urfave/cli"

	"v3d"
	"v3d/internal/raster"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatalln(err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "v3d"
	app.Usage = "3D point and vector calculator"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "trace every operation to stderr",
		},
	}
	app.Before = func(c *cli.Context) error {
		if c.Bool("verbose") {
			v3d.SetLogger(v3d.NewStdLogger(log.New(c.App.ErrWriter, "v3d: ", 0)))
		}
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:      "polar",
			Usage:     "convert a point to (r, theta, phi)",
			ArgsUsage: "x,y,z",
			Action: func(c *cli.Context) error {
				p, err := points(c, 1)
				if err != nil {
					return err
				}
				r, theta, phi := p[0].ToPolar()
				return output(c, r, theta, phi)
			},
		},
		{
			Name:  "cartesian",
			Usage: "convert (r, theta, phi) in degrees to a point",
			Flags: []cli.Flag{
				cli.Float64Flag{Name: "r", Value: 1, Usage: "radius"},
				cli.Float64Flag{Name: "theta", Usage: "inclination from +Z in degrees"},
				cli.Float64Flag{Name: "phi", Usage: "azimuth from +X in degrees"},
			},
			Action: func(c *cli.Context) error {
				return output(c, v3d.FromPolar(c.Float64("r"), c.Float64("theta"), c.Float64("phi")))
			},
		},
		{
			Name:      "dist",
			Usage:     "distance between two points",
			ArgsUsage: "x,y,z x,y,z",
			Action: func(c *cli.Context) error {
				p, err := points(c, 2)
				if err != nil {
					return err
				}
				return output(c, p[0].Dist(p[1]))
			},
		},
		binary("add", "sum of two vectors", func(a, b v3d.Vector) (any, error) {
			return a.Add(b), nil
		}),
		binary("sub", "difference of two vectors", func(a, b v3d.Vector) (any, error) {
			return a.Subtract(b), nil
		}),
		binary("dot", "dot product", func(a, b v3d.Vector) (any, error) {
			return a.Dot(b), nil
		}),
		binary("cross", "cross product", func(a, b v3d.Vector) (any, error) {
			return a.Multiply(b)
		}),
		binary("angle", "angle between two vectors in degrees", func(a, b v3d.Vector) (any, error) {
			return a.AngleBetween(b)
		}),
		binary("normal", "unit normal of the plane of two vectors", func(a, b v3d.Vector) (any, error) {
			return a.Normal(b)
		}),
		binary("classify", "parallel, perpendicular or neither", func(a, b v3d.Vector) (any, error) {
			if a.IsNonParallel(b) {
				return "non-parallel", nil
			}
			if a.IsParallel(b) {
				return "parallel", nil
			}
			return "perpendicular", nil
		}),
		{
			Name:      "mag",
			Usage:     "length of a vector",
			ArgsUsage: "x,y,z",
			Action: func(c *cli.Context) error {
				v, err := vectors(c, 1)
				if err != nil {
					return err
				}
				return output(c, v[0].Mag())
			},
		},
		{
			Name:      "unit",
			Usage:     "unit vector",
			ArgsUsage: "x,y,z",
			Action: func(c *cli.Context) error {
				v, err := vectors(c, 1)
				if err != nil {
					return err
				}
				u, err := v[0].Unit()
				if err != nil {
					return err
				}
				return output(c, u)
			},
		},
		{
			Name:      "heading",
			Usage:     "inclination and azimuth of a vector in degrees",
			ArgsUsage: "x,y,z",
			Action: func(c *cli.Context) error {
				v, err := vectors(c, 1)
				if err != nil {
					return err
				}
				theta, phi, err := v[0].Heading()
				if err != nil {
					return err
				}
				return output(c, theta, phi)
			},
		},
		{
			Name:      "scale",
			Usage:     "multiply (or with --divide, divide) a vector by a scalar",
			ArgsUsage: "x,y,z",
			Flags: []cli.Flag{
				cli.Float64Flag{Name: "k", Value: 1, Usage: "scalar"},
				cli.BoolFlag{Name: "divide", Usage: "divide instead of multiply"},
			},
			Action: func(c *cli.Context) error {
				v, err := vectors(c, 1)
				if err != nil {
					return err
				}
				op := v[0].Multiply
				if c.Bool("divide") {
					op = v[0].Divide
				}
				r, err := op(c.Float64("k"))
				if err != nil {
					return err
				}
				return output(c, r)
			},
		},
		{
			Name:      "rotate",
			Usage:     "rotate a vector about X, then Y, then Z",
			ArgsUsage: "x,y,z",
			Flags:     eulerFlags(),
			Action: func(c *cli.Context) error {
				v, err := vectors(c, 1)
				if err != nil {
					return err
				}
				return output(c, v[0].Rotate(c.Float64("alpha"), c.Float64("beta"), c.Float64("gamma")))
			},
		},
		{
			Name:      "rotate-about",
			Usage:     "rotate a vector about an axis",
			ArgsUsage: "x,y,z axis-x,axis-y,axis-z",
			Flags: []cli.Flag{
				cli.Float64Flag{Name: "angle", Usage: "rotation in degrees"},
				cli.BoolFlag{Name: "normalize", Usage: "scale the axis to unit length first"},
			},
			Action: func(c *cli.Context) error {
				v, err := vectors(c, 2)
				if err != nil {
					return err
				}
				axis := v[1]
				if c.Bool("normalize") {
					if axis, err = axis.Unit(); err != nil {
						return err
					}
				}
				return output(c, v[0].RotateAbout(axis, c.Float64("angle")))
			},
		},
		{
			Name:      "render",
			Usage:     "draw vectors from the origin into a PNG",
			ArgsUsage: "x,y,z [x,y,z...]",
			Flags: append(eulerFlags(),
				cli.StringFlag{Name: "out", Value: "vectors.png", Usage: "output file"},
				cli.IntFlag{Name: "width", Value: 800, Usage: "image width"},
				cli.IntFlag{Name: "height", Value: 600, Usage: "image height"},
			),
			Action: render,
		},
	}
	return app
}

func render(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("render: at least one vector required")
	}
	vs, err := vectors(c, c.NArg())
	if err != nil {
		return err
	}
	cam := raster.DefaultCamera(c.Int("width"), c.Int("height"))
	orient(c, &cam)
	f, err := os.Create(c.String("out"))
	if err != nil {
		return err
	}
	if err := png.Encode(f, raster.Render(cam, vs)); err != nil {
		f.Close()
		return fmt.Errorf("render: %w", err)
	}
	return f.Close()
}

// orient overrides each camera angle whose flag was given.
func orient(c *cli.Context, cam *raster.Camera) {
	for name, angle := range map[string]*float64{
		"alpha": &cam.Alpha,
		"beta":  &cam.Beta,
		"gamma": &cam.Gamma,
	} {
		if c.IsSet(name) {
			*angle = c.Float64(name)
		}
	}
}

func binary(name, usage string, fn func(a, b v3d.Vector) (any, error)) cli.Command {
	return cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "x,y,z x,y,z",
		Action: func(c *cli.Context) error {
			v, err := vectors(c, 2)
			if err != nil {
				return err
			}
			r, err := fn(v[0], v[1])
			if err != nil {
				return err
			}
			return output(c, r)
		},
	}
}

func eulerFlags() []cli.Flag {
	return []cli.Flag{
		cli.Float64Flag{Name: "alpha", Usage: "rotation about X in degrees"},
		cli.Float64Flag{Name: "beta", Usage: "rotation about Y in degrees"},
		cli.Float64Flag{Name: "gamma", Usage: "rotation about Z in degrees"},
	}
}

func points(c *cli.Context, n int) ([]v3d.Point, error) {
	if c.NArg() != n {
		return nil, fmt.Errorf("%s: expected %d argument(s), got %d", c.Command.Name, n, c.NArg())
	}
	ps := make([]v3d.Point, n)
	for i := range ps {
		p, err := v3d.ParsePoint(c.Args().Get(i))
		if err != nil {
			return nil, err
		}
		ps[i] = p
	}
	return ps, nil
}

func vectors(c *cli.Context, n int) ([]v3d.Vector, error) {
	ps, err := points(c, n)
	if err != nil {
		return nil, err
	}
	vs := make([]v3d.Vector, n)
	for i, p := range ps {
		vs[i] = v3d.NewVector(p)
	}
	return vs, nil
}

func output(c *cli.Context, vals ...any) error {
	_, err := fmt.Fprintln(c.App.Writer, vals...)
	return err
}
