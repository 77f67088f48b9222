// Command vncpasswd encrypts, decrypts and verifies VNC password vault
// entries.
//
// Usage:
//
//	vncpasswd encrypt [-key HEX | -conf FILE] [-q] [PASSWORD]
//	vncpasswd decrypt [-key HEX | -conf FILE] [-q] HEX_BLOCK
//	vncpasswd verify  [-key HEX | -conf FILE] [-q] HEX_BLOCK [PASSWORD]
//	vncpasswd config  [-show] [-generate FILE] [-validate FILE]
//
// When PASSWORD is omitted it is prompted for without echo, or read
// from stdin when stdin is not a terminal.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path"
	"strings"

	vncdes "github.com/ultram4rine/go-vncdes"
	"golang.org/x/term"
)

func usage() {
	name := path.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "usage: %s <encrypt|decrypt|verify|config> [options] [args]\n", name)
	fmt.Fprintf(os.Stderr, "run '%s <command> -h' for command options\n", name)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "encrypt":
		err = runEncrypt(os.Args[2:])
	case "decrypt":
		err = runDecrypt(os.Args[2:])
	case "verify":
		err = runVerify(os.Args[2:])
	case "config":
		err = runConfig(os.Args[2:])
	case "version":
		fmt.Println(vncdes.Version())
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path.Base(os.Args[0]), err)
		os.Exit(1)
	}
}

// keyFlags are the -key/-conf options shared by the cipher subcommands.
type keyFlags struct {
	hexKey   string
	confFile string
}

func (kf *keyFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&kf.hexKey, "key", "", "custom key as 16 hex characters")
	fs.StringVar(&kf.confFile, "conf", "", "load key and policy from JSON config `file`")
}

func (kf *keyFlags) processor() (*vncdes.Processor, error) {
	if kf.hexKey != "" && kf.confFile != "" {
		return nil, fmt.Errorf("-key and -conf are mutually exclusive")
	}
	if kf.hexKey != "" {
		config, err := vncdes.NewConfigBuilder().HexKey(kf.hexKey).Build()
		if err != nil {
			return nil, err
		}
		return vncdes.NewProcessor(config)
	}
	if kf.confFile != "" {
		config, err := vncdes.LoadConfig(kf.confFile)
		if err != nil {
			return nil, err
		}
		return vncdes.NewProcessor(config)
	}
	return vncdes.DefaultProcessor(), nil
}

func runEncrypt(args []string) error {
	fs := flag.NewFlagSet("encrypt", flag.ExitOnError)
	var kf keyFlags
	kf.register(fs)
	quiet := fs.Bool("q", false, "print the hex block only")
	fs.Parse(args)

	p, err := kf.processor()
	if err != nil {
		return err
	}

	password := fs.Arg(0)
	if password == "" {
		if password, err = readPassword("Password: "); err != nil {
			return err
		}
	}

	hexBlock, err := p.EncryptPasswordHex(password)
	if err != nil {
		return err
	}
	if *quiet {
		fmt.Println(hexBlock)
		return nil
	}
	fmt.Printf("key:       %s\n", p.Config().KeyHex())
	fmt.Printf("encrypted: %s\n", hexBlock)
	return nil
}

func runDecrypt(args []string) error {
	fs := flag.NewFlagSet("decrypt", flag.ExitOnError)
	var kf keyFlags
	kf.register(fs)
	quiet := fs.Bool("q", false, "print the password only")
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("decrypt needs exactly one hex block argument")
	}

	p, err := kf.processor()
	if err != nil {
		return err
	}

	password, err := p.DecryptPasswordHex(strings.ToLower(strings.TrimSpace(fs.Arg(0))))
	if err != nil {
		return err
	}
	if *quiet {
		fmt.Println(password)
		return nil
	}
	fmt.Printf("key:      %s\n", p.Config().KeyHex())
	fmt.Printf("password: %s\n", password)
	return nil
}

func runVerify(args []string) error {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	var kf keyFlags
	kf.register(fs)
	quiet := fs.Bool("q", false, "print true/false only")
	fs.Parse(args)

	if fs.NArg() < 1 {
		return fmt.Errorf("verify needs a hex block argument")
	}
	hexBlock := strings.ToLower(strings.TrimSpace(fs.Arg(0)))

	p, err := kf.processor()
	if err != nil {
		return err
	}

	password := fs.Arg(1)
	if password == "" {
		if password, err = readPassword("Password: "); err != nil {
			return err
		}
	}

	ok, err := p.VerifyPassword(password, hexBlock)
	if err != nil {
		return err
	}
	if *quiet {
		fmt.Println(ok)
	} else if ok {
		fmt.Println("match")
	} else {
		fmt.Println("no match")
	}
	if !ok {
		os.Exit(1)
	}
	return nil
}

func runConfig(args []string) error {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	show := fs.Bool("show", false, "print the default configuration")
	generate := fs.String("generate", "", "write the default configuration to `file`")
	validate := fs.String("validate", "", "parse and validate a config `file`")
	fs.Parse(args)

	switch {
	case *generate != "":
		if err := vncdes.DefaultConfig().Save(*generate); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", *generate)
	case *validate != "":
		config, err := vncdes.LoadConfig(*validate)
		if err != nil {
			return err
		}
		fmt.Printf("%s: ok (key %s)\n", *validate, config.KeyHex())
	case *show:
		printConfig(vncdes.DefaultConfig())
	default:
		fs.Usage()
	}
	return nil
}

func printConfig(c vncdes.Config) {
	fmt.Printf("key:                 %s\n", c.KeyHex())
	fmt.Printf("strict_mode:         %t\n", c.StrictMode)
	fmt.Printf("auto_truncate:       %t\n", c.AutoTruncate)
	fmt.Printf("max_password_length: %d\n", c.MaxPasswordLength)
}

// readPassword prompts on the terminal without echo, or reads one line
// from stdin when stdin is a pipe.
func readPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("read password from stdin: %v", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
	fmt.Fprint(os.Stderr, prompt)
	p, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password from terminal: %v", err)
	}
	return string(p), nil
}
