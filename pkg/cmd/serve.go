package cmd

import (
	"log"
	"os"
	"os/signal"

	"github.com/evdash/evdash/pkg/evdash/dal"
	"github.com/evdash/evdash/pkg/evdash/server"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var RootCmd = &cobra.Command{
	Use:   "evdash",
	Short: "Electric vehicle population summary service",
	Long:  "evdash loads the electric vehicle population dataset and serves filterable summary views over HTTP",
}

func Execute() {

	if err := RootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(-1)
	}
}

func init() {
	ServeCmd.Flags().String("address", ":8080", "address the HTTP server listens on")
	ServeCmd.Flags().String("dataset", "", "path to the vehicle population CSV")
	RootCmd.AddCommand(ServeCmd)
	viper.BindPFlags(ServeCmd.Flags())
	viper.SetEnvPrefix("EVDASH")
	viper.AutomaticEnv()
}

var (
	ServeCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve vehicle population summaries",
		Long:  "Serve loads the dataset once and recomputes the summary bundle on every request",
		Run:   serveCmdFunc(),
	}
)

func serveCmdFunc() func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {

		log.Println("Started serve cmd")

		// .env is optional
		if err := godotenv.Load(); err == nil {
			log.Println("Loaded .env")
		}

		dataset := viper.GetString("dataset")
		if len(dataset) == 0 {
			log.Println("dataset path is required (--dataset or EVDASH_DATASET)")
			os.Exit(-1)
		}

		records, err := dal.LoadFile(dataset)
		if err != nil {
			log.Printf("Failed to load dataset...%v", err)
			os.Exit(-1)
		}
		log.Printf("Loaded %d vehicle records from %s", len(records), dataset)

		addr := viper.GetString("address")

		serve := server.NewHTTPServer(addr, records)

		signalCh := make(chan os.Signal, 1)

		go func() {
			if err := serve.ListenAndServe(); err != nil {
				log.Printf("Shutting down the server...%v", err)
				signalCh <- os.Interrupt

			}
		}()

		signal.Notify(signalCh, os.Interrupt)

		sig := <-signalCh

		log.Printf("Shutdown the server...%s", sig.String())
	}
}
