package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/argoproj-labs/sentry-msteams/pkg"
	"github.com/argoproj-labs/sentry-msteams/pkg/services"
	"github.com/argoproj-labs/sentry-msteams/server"
	"github.com/argoproj-labs/sentry-msteams/shared/k8s"
	"github.com/argoproj-labs/sentry-msteams/shared/settings"
)

const (
	defaultPort = 8080
)

func newNotifier(cfg pkg.Config, serviceType string) (pkg.Notifier, error) {
	notifier, err := pkg.NewNotifier(cfg)
	if err != nil {
		return nil, err
	}
	if serviceType == "console" {
		notifier.AddService("console", services.NewConsoleService(os.Stdout))
	}
	return notifier, nil
}

func newServeCommand() *cobra.Command {
	var (
		clientConfig  clientcmd.ClientConfig
		port          int
		serviceType   string
		configMapPath string
		secretPath    string
	)
	var command = cobra.Command{
		Use:   "serve",
		Short: "Starts HTTP server which turns posted Sentry events into Microsoft Teams messages",
		RunE: func(c *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			registry := server.NewMetricsRegistry()
			srv := server.NewServer(nil, registry, serviceType)
			getK8SClient := func() (kubernetes.Interface, string, error) {
				return k8s.NewClient(clientConfig)
			}

			if configMapPath != "" {
				cfg, err := settings.Source{ConfigMapPath: configMapPath, SecretPath: secretPath, GetK8SClient: getK8SClient}.Load(ctx)
				if err != nil {
					return err
				}
				notifier, err := newNotifier(*cfg, serviceType)
				if err != nil {
					return err
				}
				srv.SetNotifier(notifier)
			} else {
				client, namespace, err := getK8SClient()
				if err != nil {
					return err
				}
				log.Infof("loading configuration from namespace %s", namespace)
				err = settings.WatchConfig(ctx, client, namespace, func(cfg pkg.Config) error {
					notifier, err := newNotifier(cfg, serviceType)
					if err != nil {
						return err
					}
					srv.SetNotifier(notifier)
					log.Info("Settings had been updated")
					return nil
				})
				if err != nil {
					return err
				}
			}
			return srv.Serve(ctx, port)
		},
	}
	clientConfig = k8s.AddK8SFlagsToCmd(&command)
	command.Flags().IntVar(&port, "port", defaultPort, "Port number.")
	command.Flags().StringVar(&serviceType, "service", pkg.DefaultService, "Notification service. One of: teams|console")
	command.Flags().StringVar(&configMapPath, "config-map", "", "sentry-msteams-cm.yaml file path. Watch the cluster config map if empty.")
	command.Flags().StringVar(&secretPath, "secret", "", "sentry-msteams-secret.yaml file path. Use empty secret if provided value is ':empty'")
	return &command
}
