package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/jhoicas/Vitrina-web/internal/domain/entity"
	"github.com/jhoicas/Vitrina-web/pkg/client"
	"github.com/jhoicas/Vitrina-web/pkg/logger"
	"github.com/spf13/cobra"
)

type options struct {
	url     string
	timeout time.Duration
	yes     bool
}

// newEditor carga el estado actual desde el servidor.
func (o *options) newEditor(log *logger.Logger) (*client.Editor, error) {
	ed := client.NewEditor(client.New(o.url, client.WithTimeout(o.timeout)), log)
	if err := ed.Load(); err != nil {
		return nil, err
	}
	return ed, nil
}

// confirm pide confirmación interactiva salvo con --yes.
func (o *options) confirm(cmd *cobra.Command, question string) bool {
	if o.yes {
		return true
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", question)
	line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes" || answer == "s" || answer == "si" || answer == "sí"
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:           "sitectl",
		Short:         "Administra categorías, servicios y galería del sitio",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&o.url, "url", envOr("SITE_URL", "http://localhost:3001"), "URL base del sitio")
	root.PersistentFlags().DurationVar(&o.timeout, "timeout", 30*time.Second, "tiempo máximo por petición")
	root.PersistentFlags().BoolVarP(&o.yes, "yes", "y", false, "no pedir confirmación en acciones destructivas")

	root.AddCommand(categoriesCmd(o, log), servicesCmd(o, log), galleryCmd(o, log))
	return root
}

func categoriesCmd(o *options, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{Use: "categories", Aliases: []string{"cat"}, Short: "Categorías de servicios"}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Lista categorías y servicios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ed, err := o.newEditor(log)
			if err != nil {
				return err
			}
			printCategories(cmd.OutOrStdout(), ed.State().Categories)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "add NAME",
		Short: "Agrega una categoría",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := o.newEditor(log)
			if err != nil {
				return err
			}
			c, err := ed.AddCategory(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "categoría %s creada\n", c.ID)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "rename REF NAME",
		Short: "Renombra una categoría (REF = ID o posición)",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			ed, err := o.newEditor(log)
			if err != nil {
				return err
			}
			return ed.RenameCategory(args[0], args[1])
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "delete REF",
		Short: "Elimina una categoría y todos sus servicios",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := o.newEditor(log)
			if err != nil {
				return err
			}
			if !o.confirm(cmd, "¿Eliminar la categoría y todos sus servicios?") {
				return nil
			}
			return ed.DeleteCategory(args[0])
		},
	})
	return cmd
}

func servicesCmd(o *options, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{Use: "services", Aliases: []string{"svc"}, Short: "Servicios dentro de una categoría"}

	cmd.AddCommand(&cobra.Command{
		Use:   "add CATEGORY NAME PRICE",
		Short: "Agrega un servicio",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := o.newEditor(log)
			if err != nil {
				return err
			}
			s, err := ed.AddService(args[0], args[1], entity.ParsePrice(args[2]))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "servicio %s creado\n", s.ID)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "update CATEGORY SERVICE NAME PRICE",
		Short: "Cambia nombre y precio de un servicio",
		Args:  cobra.ExactArgs(4),
		RunE: func(_ *cobra.Command, args []string) error {
			ed, err := o.newEditor(log)
			if err != nil {
				return err
			}
			return ed.UpdateService(args[0], args[1], args[2], entity.ParsePrice(args[3]))
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "delete CATEGORY SERVICE",
		Short: "Elimina un servicio",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := o.newEditor(log)
			if err != nil {
				return err
			}
			if !o.confirm(cmd, "¿Eliminar el servicio?") {
				return nil
			}
			return ed.DeleteService(args[0], args[1])
		},
	})
	return cmd
}

func galleryCmd(o *options, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{Use: "gallery", Aliases: []string{"img"}, Short: "Imágenes de la galería"}

	var file, src, alt string
	resolveSrc := func(ed *client.Editor) (string, error) {
		if file == "" {
			return src, nil
		}
		content, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		return ed.UploadFile(file, content)
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Lista la galería",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ed, err := o.newEditor(log)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tID\tSRC\tALT")
			for i, img := range ed.State().Gallery {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i, img.ID, img.Src, img.Alt)
			}
			return w.Flush()
		},
	})

	add := &cobra.Command{
		Use:   "add",
		Short: "Agrega una imagen (--file sube un archivo, --src usa una URL)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ed, err := o.newEditor(log)
			if err != nil {
				return err
			}
			s, err := resolveSrc(ed)
			if err != nil {
				return err
			}
			img, err := ed.AddImage(s, alt)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imagen %s agregada (%s)\n", img.ID, img.Src)
			return nil
		},
	}
	update := &cobra.Command{
		Use:   "update REF",
		Short: "Cambia archivo/URL y descripción de una imagen",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ed, err := o.newEditor(log)
			if err != nil {
				return err
			}
			s, err := resolveSrc(ed)
			if err != nil {
				return err
			}
			return ed.UpdateImage(args[0], s, alt)
		},
	}
	for _, c := range []*cobra.Command{add, update} {
		c.Flags().StringVar(&file, "file", "", "archivo local a subir")
		c.Flags().StringVar(&src, "src", "", "URL externa o ruta ya subida")
		c.Flags().StringVar(&alt, "alt", "", "texto alternativo")
		c.MarkFlagsMutuallyExclusive("file", "src")
	}
	cmd.AddCommand(add, update)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete REF",
		Short: "Elimina una imagen y su archivo si fue subido",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := o.newEditor(log)
			if err != nil {
				return err
			}
			if !o.confirm(cmd, "¿Eliminar la imagen?") {
				return nil
			}
			return ed.DeleteImage(args[0])
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "move REF POSITION",
		Short: "Mueve una imagen a otra posición (base 0)",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			pos, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("posición inválida %q", args[1])
			}
			ed, err := o.newEditor(log)
			if err != nil {
				return err
			}
			return ed.MoveImage(args[0], pos)
		},
	})
	return cmd
}

func printCategories(out io.Writer, cats []entity.Category) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for i, c := range cats {
		fmt.Fprintf(w, "%d\t%s\t%s\n", i, c.ID, c.Name)
		for j, s := range c.Services {
			fmt.Fprintf(w, "  %d.%d\t%s\t%s\t%s\n", i, j, s.ID, s.Name, s.Price)
		}
	}
	_ = w.Flush()
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
