package cli

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ehrlich-b/cube/internal/cfen"
	"github.com/ehrlich-b/cube/internal/cube"
	"github.com/ehrlich-b/cube/internal/facelet"
	"github.com/ehrlich-b/cube/internal/kociemba"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a scrambled 3x3x3 cube with Kociemba's two-phase algorithm",
	Long: `Solve a scrambled 3x3x3 cube using Kociemba's two-phase IDA* algorithm.
The scramble should be provided as a string of moves.

Use --headless for programmatic output (space-separated moves only).`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runID := uuid.New().String()
		scramble := args[0]
		headless, _ := cmd.Flags().GetBool("headless")
		useCfenOutput, _ := cmd.Flags().GetBool("cfen")
		startCfen, _ := cmd.Flags().GetString("start")
		maxDepth, _ := cmd.Flags().GetInt("max-depth")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		var c *cube.Cube
		if startCfen != "" {
			cfenState, err := cfen.ParseCFEN(startCfen)
			if err != nil {
				if !headless {
					fmt.Printf("Error parsing starting CFEN: %v\n", err)
				}
				os.Exit(1)
			}
			if cfenState.Dimension != 3 {
				if !headless {
					fmt.Printf("Kociemba solving only supports 3x3x3 cubes, got dimension %d\n", cfenState.Dimension)
				}
				os.Exit(1)
			}
			c, err = cfenState.ToCube()
			if err != nil {
				if !headless {
					fmt.Printf("Error converting CFEN to cube: %v\n", err)
				}
				os.Exit(1)
			}
		} else {
			c = cube.NewCube(3)
		}

		if !headless {
			fmt.Printf("Solving 3x3x3 cube with scramble: %s\n", scramble)
			if startCfen != "" {
				fmt.Printf("Starting from CFEN: %s\n", startCfen)
			}
		}

		if scramble != "" {
			moves, err := cube.ParseScramble(scramble)
			if err != nil {
				if !headless {
					fmt.Printf("Error parsing scramble: %v\n", err)
				}
				os.Exit(1)
			}
			c.ApplyMoves(moves)
		}

		if !headless {
			useColor, _ := cmd.Flags().GetBool("color")
			useLetters, _ := cmd.Flags().GetBool("letters")
			useUnicode := useColor && !useLetters
			fmt.Printf("\nCube state after scramble:\n%s\n", c.UnfoldedString(useColor, useUnicode))
		}

		kociemba.Setup()

		faceletStr, err := c.ToFaceletString()
		if err != nil {
			if !headless {
				fmt.Printf("Error converting cube to facelets: %v\n", err)
			}
			os.Exit(1)
		}

		cubieCube, err := facelet.ToCube(faceletStr)
		if err != nil {
			if !headless {
				fmt.Printf("Cube is not a valid cube state: %v\n", err)
			}
			os.Exit(1)
		}

		start := time.Now()
		solution, err := kociemba.Solve(cubieCube, maxDepth, timeout, false)
		duration := time.Since(start)
		if err != nil {
			log.Printf("solve[%s]: failed after %v: %v", runID, duration, err)
			if !headless {
				fmt.Printf("Error solving cube: %v\n", err)
			}
			os.Exit(1)
		}
		log.Printf("solve[%s]: %q -> %q in %v", runID, scramble, solution, duration)

		solutionMoves, err := cube.ParseScramble(solution)
		if err != nil {
			if !headless {
				fmt.Printf("Solver returned an unparseable solution %q: %v\n", solution, err)
			}
			os.Exit(1)
		}
		c.ApplyMoves(solutionMoves)

		if useCfenOutput {
			cfenStr, err := cfen.GenerateCFEN(c)
			if err != nil {
				if !headless {
					fmt.Printf("Error generating CFEN: %v\n", err)
				}
				os.Exit(1)
			}
			fmt.Print(cfenStr)
		} else if headless {
			fmt.Print(solution)
		} else {
			fmt.Printf("Solution: %s\n", solution)
			fmt.Printf("Moves: %d\n", len(solutionMoves))
			fmt.Printf("Time: %v\n", duration)
		}
	},
}

func init() {
	solveCmd.Flags().BoolP("color", "c", false, "Use colored output (Unicode blocks by default)")
	solveCmd.Flags().Bool("letters", false, "Use letters instead of Unicode blocks when using --color")
	solveCmd.Flags().Bool("headless", false, "Output only space-separated moves for programmatic use")
	solveCmd.Flags().Bool("cfen", false, "Output final cube state as CFEN string instead of moves")
	solveCmd.Flags().String("start", "", "Starting cube state as CFEN string (default: solved)")
	solveCmd.Flags().Int("max-depth", 24, "Maximum total solution length to search for")
	solveCmd.Flags().Duration("timeout", 10*time.Second, "Maximum time to search before giving up")
}
